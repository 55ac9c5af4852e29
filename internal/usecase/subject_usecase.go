package usecase

import (
	"edupress/internal/entity"
	"edupress/internal/repo/persistent"
	"edupress/pkg/apperr"
)

type SubjectUseCase interface {
	ListSubjects() ([]*entity.Subject, error)
	GetSubject(idOrSlug string) (*entity.Subject, error)
}

type subjectUseCase struct {
	subjectRepo persistent.SubjectRepository
}

func NewSubjectUseCase(subjectRepo persistent.SubjectRepository) SubjectUseCase {
	return &subjectUseCase{subjectRepo: subjectRepo}
}

func (uc *subjectUseCase) ListSubjects() ([]*entity.Subject, error) {
	return uc.subjectRepo.List(true)
}

func (uc *subjectUseCase) GetSubject(idOrSlug string) (*entity.Subject, error) {
	subject, err := uc.subjectRepo.GetByIDOrSlug(idOrSlug)
	if err != nil {
		return nil, err
	}
	if subject == nil || !subject.IsActive {
		return nil, apperr.NotFound("subject not found")
	}
	return subject, nil
}
