package config

// DefaultConfigYAML is the embedded baseline configuration. External
// config files and MASJID_* env vars override individual keys.
var DefaultConfigYAML = []byte(`server:
  port: ":8080"
  mode: "debug"
  base_url: "http://localhost:8080"

database:
  host: "127.0.0.1"
  port: "3306"
  username: "masjid"
  password: "masjid"
  dbname: "masjid"
  charset: "utf8mb4"

jwt:
  secret: "ganti-rahasia-ini-di-produksi"
  expire_hours: 24

email:
  enabled: false
  host: "smtp.example.com"
  port: 587
  username: ""
  password: ""
  from: "Masjid Baitul Mannan"

seed:
  admin_password: "admin123"
  member_password: "warga123"
`)
