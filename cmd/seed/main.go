package main

import (
	"fmt"
	"strings"
	"time"

	"edupress/internal/model"
	"edupress/pkg/config"
	"edupress/pkg/database"
	"edupress/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	subjects := []struct {
		name  string
		slug  string
		desc  string
		icon  string
		color string
	}{
		{"Mathematics", "mathematics", "Algebra, calculus, geometry and beyond", "sigma", "#2563EB"},
		{"Computer Science", "computer-science", "Programming, algorithms and systems", "cpu", "#16A34A"},
		{"Physics", "physics", "From mechanics to quantum theory", "atom", "#9333EA"},
		{"History", "history", "The past, examined", "scroll", "#CA8A04"},
	}

	subjectIDs := make(map[string]string, len(subjects))

	for _, s := range subjects {
		var existing model.SubjectModel
		result := db.Where("slug = ?", s.slug).First(&existing)
		if result.Error == nil {
			log.Info("Subject %s already exists, skipping", s.slug)
			subjectIDs[s.slug] = existing.ID
			continue
		}

		subject := &model.SubjectModel{
			ID:          uuid.New().String(),
			Name:        s.name,
			Slug:        s.slug,
			Description: s.desc,
			Icon:        s.icon,
			Color:       s.color,
			IsActive:    true,
		}
		if err := db.Create(subject).Error; err != nil {
			return fmt.Errorf("failed to create subject %s: %w", s.slug, err)
		}
		log.Info("Created subject: %s", s.name)
		subjectIDs[s.slug] = subject.ID
	}

	adminID, err := seedUser(db, log, "admin@edupress.io", "Platform Admin", "admin123456", "admin")
	if err != nil {
		return err
	}
	_ = adminID

	educators := []struct {
		email    string
		name     string
		bio      string
		subjects []string
	}{
		{"grace@edupress.io", "Grace Hoffman", "Teaches discrete math and loves a good proof.", []string{"mathematics", "computer-science"}},
		{"marcus@edupress.io", "Marcus Webb", "Former lab physicist, now full-time explainer.", []string{"physics"}},
	}

	type seededEducator struct {
		userID    string
		profileID string
		subjects  []string
	}
	seeded := make([]seededEducator, 0, len(educators))

	for _, e := range educators {
		userID, err := seedUser(db, log, e.email, e.name, "educator123", "educator")
		if err != nil {
			return err
		}

		var existing model.EducatorProfileModel
		result := db.Where("user_id = ?", userID).First(&existing)
		if result.Error == nil {
			log.Info("Educator profile for %s already exists, skipping", e.email)
			seeded = append(seeded, seededEducator{userID: userID, profileID: existing.ID, subjects: e.subjects})
			continue
		}

		ids := make([]string, 0, len(e.subjects))
		for _, slug := range e.subjects {
			ids = append(ids, subjectIDs[slug])
		}

		profile := &model.EducatorProfileModel{
			ID:         uuid.New().String(),
			UserID:     userID,
			Bio:        e.bio,
			SubjectIDs: strings.Join(ids, ","),
			IsApproved: true,
		}
		if err := db.Create(profile).Error; err != nil {
			return fmt.Errorf("failed to create educator profile for %s: %w", e.email, err)
		}
		log.Info("Created educator profile: %s", e.name)
		seeded = append(seeded, seededEducator{userID: userID, profileID: profile.ID, subjects: e.subjects})
	}

	if _, err := seedUser(db, log, "sam@edupress.io", "Sam Reader", "student123", "student"); err != nil {
		return err
	}

	articles := []struct {
		educator int
		subject  string
		title    string
		slug     string
		content  string
		excerpt  string
		tags     string
		status   string
	}{
		{0, "mathematics", "Introduction to Graph Theory", "introduction-to-graph-theory",
			strings.Repeat("Graphs model pairwise relations between objects. A graph is made up of vertices connected by edges. ", 12),
			"Vertices, edges, and why they matter.", `["graphs","discrete-math"]`, "published"},
		{0, "computer-science", "Big-O Without Tears", "big-o-without-tears",
			strings.Repeat("Asymptotic notation describes how running time grows with input size. The constants wash out. ", 10),
			"A gentle tour of asymptotic notation.", `["algorithms","complexity"]`, "published"},
		{1, "physics", "Why the Sky Is Blue", "why-the-sky-is-blue",
			strings.Repeat("Rayleigh scattering favors shorter wavelengths, so blue light scatters far more than red. ", 10),
			"Rayleigh scattering explained.", `["optics","light"]`, "published"},
		{1, "physics", "Notes on Entropy", "notes-on-entropy",
			strings.Repeat("Entropy counts microstates. The second law is bookkeeping at cosmic scale. ", 8),
			"", `["thermodynamics"]`, "pending"},
	}

	for _, a := range articles {
		var existing model.ArticleModel
		result := db.Where("slug = ?", a.slug).First(&existing)
		if result.Error == nil {
			log.Info("Article %s already exists, skipping", a.slug)
			continue
		}

		ed := seeded[a.educator]
		words := len(strings.Fields(a.content))
		readingTime := words / 200
		if readingTime < 1 {
			readingTime = 1
		}

		article := &model.ArticleModel{
			ID:          uuid.New().String(),
			Title:       a.title,
			Slug:        a.slug,
			Content:     a.content,
			Excerpt:     a.excerpt,
			EducatorID:  ed.profileID,
			UserID:      ed.userID,
			SubjectID:   subjectIDs[a.subject],
			Tags:        a.tags,
			Status:      a.status,
			ReadingTime: readingTime,
		}
		if a.status == "published" {
			now := time.Now()
			article.PublishedAt = &now
		}
		if err := db.Create(article).Error; err != nil {
			return fmt.Errorf("failed to create article %s: %w", a.slug, err)
		}
		log.Info("Created article: %s (%s)", a.title, a.status)

		if a.status == "published" {
			if err := db.Model(&model.EducatorProfileModel{}).Where("id = ?", ed.profileID).
				UpdateColumn("total_articles", gorm.Expr("total_articles + 1")).Error; err != nil {
				log.Error("Failed to bump article counter for %s: %v", ed.profileID, err)
			}
			if err := db.Model(&model.SubjectModel{}).Where("id = ?", subjectIDs[a.subject]).
				UpdateColumn("article_count", gorm.Expr("article_count + 1")).Error; err != nil {
				log.Error("Failed to bump subject counter for %s: %v", a.subject, err)
			}
		}
	}

	return nil
}

func seedUser(db *gorm.DB, log *logger.Logger, email, name, password, role string) (string, error) {
	var existing model.UserModel
	result := db.Where("email = ?", email).First(&existing)
	if result.Error == nil {
		log.Info("User %s already exists, skipping", email)
		return existing.ID, nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password for %s: %w", email, err)
	}

	user := &model.UserModel{
		ID:       uuid.New().String(),
		Email:    email,
		Name:     name,
		Password: string(hashed),
		Role:     role,
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		return "", fmt.Errorf("failed to create user %s: %w", email, err)
	}

	log.Info("Created user: %s (%s)", name, role)
	return user.ID, nil
}
