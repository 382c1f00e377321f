package config

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"tour-admin-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "tour_admin_db")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	)
	return dsn, nil
}

// SeedDatabase makes sure the minimum rows the back office expects are
// present: one admin subject holding the admin role, the parent category
// labels, and the homepage hero content row.
func SeedDatabase() {
	// ---------------- Admin + role ----------------
	var adminCount int64
	DB.Model(&models.AdminUser{}).Count(&adminCount)
	if adminCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(envOrDefault("ADMIN_SEED_PASSWORD", "admin123")), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.AdminUser{
				FullName: "Admin User",
				Email:    envOrDefault("ADMIN_SEED_EMAIL", "admin@tours.local"),
				Password: string(hash),
			}
			if err := DB.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				if err := DB.Create(&models.UserRole{UserID: admin.ID, Role: models.RoleAdmin}).Error; err != nil {
					log.Printf("warning: failed to assign admin role: %v", err)
				}
				log.Println("Default admin seeded")
			}
		}
	}

	// ---------------- Parent categories ----------------
	var catCount int64
	DB.Model(&models.Category{}).Count(&catCount)
	if catCount == 0 {
		parents := []models.Category{
			{Name: "Kerala Travel", Slug: "kerala-travel", DisplayOrder: 1, IsActive: true},
			{Name: "Discover India", Slug: "discover-india", DisplayOrder: 2, IsActive: true},
			{Name: "Global Holiday", Slug: "global-holiday", DisplayOrder: 3, IsActive: true},
		}
		if err := DB.Create(&parents).Error; err != nil {
			log.Printf("warning: failed to seed parent categories: %v", err)
		} else {
			log.Println("Parent categories seeded")
		}
	}

	// ---------------- Homepage hero content ----------------
	var heroCount int64
	DB.Model(&models.SiteContent{}).Where("element_key = ?", models.ElementKeyHomepageHero).Count(&heroCount)
	if heroCount == 0 {
		blob, err := json.Marshal(models.HeroBannerContent{Images: []models.GalleryImage{}})
		if err == nil {
			row := models.SiteContent{
				ElementKey:   models.ElementKeyHomepageHero,
				ContentValue: datatypes.JSON(blob),
			}
			if err := DB.Create(&row).Error; err != nil {
				log.Printf("warning: failed to seed homepage hero content: %v", err)
			} else {
				log.Println("Homepage hero content seeded")
			}
		}
	}
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	// AutoMigrate in parent->child order
	if err := DB.AutoMigrate(
		&models.AdminUser{},
		&models.UserRole{},
		&models.Category{},
		&models.Tour{},
		&models.TourImage{},
		&models.TourSection{},
		&models.TourInquiry{},
		&models.DayOutInquiry{},
		&models.ContactInquiry{},
		&models.QuickEnquiry{},
		&models.SiteContent{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
