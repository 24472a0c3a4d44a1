package database

import (
	"fmt"
	"log"

	"github.com/setbox30-netizen/masjid-baitul-mannan/config"
	"github.com/setbox30-netizen/masjid-baitul-mannan/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init opens the database connection, migrates the schema and seeds
// the default accounts, settings and category suggestions.
func Init(cfg *config.Config) error {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
	)

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return fmt.Errorf("gagal terhubung ke database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	if err := DB.AutoMigrate(
		&models.User{},
		&models.FinanceRecord{},
		&models.FinanceCategory{},
		&models.InventoryItem{},
		&models.Event{},
		&models.Setting{},
	); err != nil {
		return err
	}

	if err := seedUsers(cfg); err != nil {
		return err
	}
	if err := seedSettings(); err != nil {
		return err
	}
	if err := seedFinanceCategories(); err != nil {
		return err
	}

	log.Println("database siap")
	return nil
}

// seedUsers creates the default admin and member accounts when the
// users table is empty. Passwords come from the seed config and are
// stored as bcrypt hashes.
func seedUsers(cfg *config.Config) error {
	var count int64
	DB.Model(&models.User{}).Count(&count)
	if count > 0 {
		return nil
	}

	defaults := []struct {
		Username string
		Password string
		Role     string
	}{
		{"admin", cfg.Seed.AdminPassword, models.RoleAdmin},
		{"warga", cfg.Seed.MemberPassword, models.RoleMember},
	}

	for _, d := range defaults {
		hashed, err := bcrypt.GenerateFromPassword([]byte(d.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("gagal meng-hash kata sandi akun %s: %w", d.Username, err)
		}
		user := models.User{Username: d.Username, Password: string(hashed), Role: d.Role}
		if err := DB.Create(&user).Error; err != nil {
			return err
		}
	}
	log.Println("akun bawaan dibuat: admin, warga")
	return nil
}

// seedSettings inserts the enumerated settings keys that are missing,
// with the default mosque profile values.
func seedSettings() error {
	defaults := map[string]string{
		models.SettingMosqueName:    "Baitul Mannan",
		models.SettingMosqueAddress: "Jl. Raya No. 123, Kota Bandung",
		models.SettingMosquePhone:   "0812-3456-7890",
		models.SettingChairmanName:  "H. Ahmad Subarjo",
		models.SettingTreasurerName: "Hj. Siti Aminah",
		models.SettingMosqueLogo:    "",
	}

	for _, key := range models.KnownSettingKeys() {
		var existing models.Setting
		if err := DB.Where("`key` = ?", key).First(&existing).Error; err == nil {
			continue
		}
		if err := DB.Create(&models.Setting{Key: key, Value: defaults[key]}).Error; err != nil {
			return err
		}
	}
	return nil
}

// seedFinanceCategories fills the suggestion set when the table is empty.
func seedFinanceCategories() error {
	var count int64
	DB.Model(&models.FinanceCategory{}).Count(&count)
	if count > 0 {
		return nil
	}
	cats := models.DefaultFinanceCategories()
	return DB.Create(&cats).Error
}

// GetDB returns the shared connection handle
func GetDB() *gorm.DB {
	return DB
}
