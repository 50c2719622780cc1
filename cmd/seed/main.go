package main

import (
	"fmt"

	"github.com/h9rms/wanderlust-grid-bloom/internal/entity"
	"github.com/h9rms/wanderlust-grid-bloom/internal/repo/persistent"
	"github.com/h9rms/wanderlust-grid-bloom/pkg/config"
	"github.com/h9rms/wanderlust-grid-bloom/pkg/database"
	"github.com/h9rms/wanderlust-grid-bloom/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

type seedUser struct {
	email    string
	password string
	username string
	fullName string
	bio      string
}

type seedPost struct {
	authorEmail string
	title       string
	content     string
	location    string
	imageURL    string
}

var seedUsers = []seedUser{
	{
		email:    "anna@example.com",
		password: "wanderlust",
		username: "anna.unterwegs",
		fullName: "Anna Berg",
		bio:      "Backpacking durch Südostasien seit 2023.",
	},
	{
		email:    "jonas@example.com",
		password: "wanderlust",
		username: "jonas.travels",
		fullName: "Jonas Keller",
		bio:      "Fotograf, immer auf der Suche nach dem nächsten Sonnenaufgang.",
	},
}

var seedPosts = []seedPost{
	{
		authorEmail: "anna@example.com",
		title:       "Eine Woche auf Koh Lanta",
		content:     "Ruhige Strände, günstige Bungalows und das beste Pad Thai meines Lebens.",
		location:    "Koh Lanta, Thailand",
		imageURL:    "https://images.unsplash.com/photo-1506905925346-21bda4d32df4",
	},
	{
		authorEmail: "jonas@example.com",
		title:       "Sonnenaufgang am Mount Batur",
		content:     "Um 3 Uhr los, um 6 Uhr oben. Jede Minute Schlafmangel wert.",
		location:    "Bali, Indonesien",
		imageURL:    "https://images.unsplash.com/photo-1537996194471-e657df975ab4",
	},
	{
		authorEmail: "jonas@example.com",
		title:       "Streetfood in Hanoi",
		content:     "Pho zum Frühstück, Banh Mi zum Mittag, Bia Hoi am Abend.",
		location:    "Hanoi, Vietnam",
	},
}

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

	userRepo := persistent.NewUserRepository(db)
	profileRepo := persistent.NewProfileRepository(db)
	postRepo := persistent.NewPostRepository(db)

	userIDs := make(map[string]string)

	for _, su := range seedUsers {
		if existing, err := userRepo.GetByEmail(su.email); err == nil {
			log.Info("User %s already exists, skipping", su.email)
			userIDs[su.email] = existing.ID
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(su.password), bcrypt.DefaultCost)
		if err != nil {
			log.Error("Failed to hash password for %s: %v", su.email, err)
			continue
		}

		user := &entity.User{
			Email:    su.email,
			Password: string(hashed),
			Role:     entity.RoleMember,
			IsActive: true,
		}
		if err := userRepo.Create(user); err != nil {
			log.Error("Failed to create user %s: %v", su.email, err)
			continue
		}
		userIDs[su.email] = user.ID

		profile := &entity.Profile{
			UserID:   user.ID,
			Username: su.username,
			FullName: su.fullName,
			Bio:      su.bio,
		}
		if err := profileRepo.Create(profile); err != nil {
			log.Error("Failed to create profile for %s: %v", su.email, err)
		}

		log.Info("Created user %s", su.email)
	}

	for _, sp := range seedPosts {
		authorID, ok := userIDs[sp.authorEmail]
		if !ok {
			continue
		}

		post := &entity.Post{
			UserID:   authorID,
			Title:    sp.title,
			Content:  sp.content,
			Location: sp.location,
			ImageURL: sp.imageURL,
		}
		if err := postRepo.Create(post); err != nil {
			log.Error("Failed to create post %q: %v", sp.title, err)
			continue
		}
		log.Info("Created post %q", sp.title)
	}

	log.Info("Seeding complete")
}
