package main

import (
	"flag"
	"log"
	"strings"

	"github.com/setbox30-netizen/masjid-baitul-mannan/config"
	"github.com/setbox30-netizen/masjid-baitul-mannan/database"
	"github.com/setbox30-netizen/masjid-baitul-mannan/middleware"
	"github.com/setbox30-netizen/masjid-baitul-mannan/router"
)

// @title API Administrasi Masjid Baitul Mannan
// @version 1.0
// @description API keuangan, inventaris, kegiatan, dan pengaturan masjid dengan dua peran pengguna (admin dan warga)
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "path file konfigurasi eksternal (opsional)")
	flag.StringVar(&configFile, "c", "", "path file konfigurasi (singkat)")
	flag.StringVar(&port, "port", "", "port listen, misal: 8080 atau :8080")
	flag.StringVar(&port, "p", "", "port listen (singkat)")
	flag.BoolVar(&showVersion, "version", false, "tampilkan versi")
	flag.BoolVar(&showVersion, "v", false, "tampilkan versi (singkat)")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("Administrasi Masjid Baitul Mannan v1.0.0")
		return
	}

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("gagal memuat konfigurasi: %v", err)
	}

	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Printf("port dari argumen: %s", port)
	}

	config.PrintConfig()

	if err := database.Init(cfg); err != nil {
		log.Fatalf("gagal inisialisasi database: %v", err)
	}

	middleware.InitJWT(cfg)

	r := router.SetupRouter(cfg)

	log.Printf("==========================================")
	log.Printf("  🕌 Administrasi Masjid Baitul Mannan")
	log.Printf("==========================================")
	log.Printf("  Halaman admin: http://localhost%s/", cfg.Server.Port)
	log.Printf("  Swagger:       http://localhost%s/swagger/index.html", cfg.Server.Port)
	log.Printf("  API:           http://localhost%s/api/v1/", cfg.Server.Port)
	log.Printf("==========================================")

	if err := r.Run(cfg.Server.Port); err != nil {
		log.Fatalf("server gagal berjalan: %v", err)
	}
}
