// Package docs registers the Swagger specification.
// Regenerate with: swag init
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/api/v1/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {"200": {"description": "Berhasil"}, "401": {"description": "Username atau password salah"}}
            }
        },
        "/api/v1/auth/profile": {
            "get": {
                "tags": ["auth"],
                "summary": "Profil saya",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Berhasil"}}
            }
        },
        "/api/v1/auth/password": {
            "put": {
                "tags": ["auth"],
                "summary": "Ganti kata sandi",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Berhasil"}}
            }
        },
        "/api/v1/stats": {
            "get": {
                "tags": ["stats"],
                "summary": "Ringkasan dasbor",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Berhasil"}}
            }
        },
        "/api/v1/finances": {
            "get": {
                "tags": ["finances"],
                "summary": "Daftar transaksi terbaru (maks 50 baris)",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Berhasil"}}
            },
            "post": {
                "tags": ["finances"],
                "summary": "Tambah transaksi kas",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Berhasil"}, "403": {"description": "Bukan pengurus"}}
            }
        },
        "/api/v1/finances/report": {
            "get": {
                "tags": ["finances"],
                "summary": "Laporan bulanan dengan saldo berjalan",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "month", "in": "query", "type": "string"}],
                "responses": {"200": {"description": "Berhasil"}}
            }
        },
        "/api/v1/finances/categories": {
            "get": {
                "tags": ["categories"],
                "summary": "Daftar kategori",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Berhasil"}}
            },
            "post": {
                "tags": ["categories"],
                "summary": "Tambah kategori",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Berhasil"}}
            }
        },
        "/api/v1/finances/{id}": {
            "get": {
                "tags": ["finances"],
                "summary": "Detail transaksi",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "Berhasil"}, "404": {"description": "Tidak ditemukan"}}
            },
            "put": {
                "tags": ["finances"],
                "summary": "Ubah transaksi (ganti seluruh isian)",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "Berhasil"}}
            },
            "delete": {
                "tags": ["finances"],
                "summary": "Hapus transaksi",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "Berhasil"}}
            }
        },
        "/api/v1/inventory": {
            "get": {
                "tags": ["inventory"],
                "summary": "Daftar inventaris",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Berhasil"}}
            },
            "post": {
                "tags": ["inventory"],
                "summary": "Tambah inventaris",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Berhasil"}}
            }
        },
        "/api/v1/inventory/{id}": {
            "put": {
                "tags": ["inventory"],
                "summary": "Ubah inventaris",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "Berhasil"}}
            },
            "delete": {
                "tags": ["inventory"],
                "summary": "Hapus inventaris",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "Berhasil"}}
            }
        },
        "/api/v1/events": {
            "get": {
                "tags": ["events"],
                "summary": "Daftar kegiatan",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Berhasil"}}
            },
            "post": {
                "tags": ["events"],
                "summary": "Tambah kegiatan",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Berhasil"}}
            }
        },
        "/api/v1/events/{id}": {
            "put": {
                "tags": ["events"],
                "summary": "Ubah kegiatan",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "Berhasil"}}
            },
            "delete": {
                "tags": ["events"],
                "summary": "Hapus kegiatan",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "Berhasil"}}
            }
        },
        "/api/v1/settings": {
            "get": {
                "tags": ["settings"],
                "summary": "Profil masjid",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Berhasil"}}
            },
            "put": {
                "tags": ["settings"],
                "summary": "Simpan profil masjid (upsert atomik)",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Berhasil"}, "400": {"description": "Kunci tidak dikenal"}}
            }
        },
        "/api/v1/settings/logo": {
            "post": {
                "tags": ["settings"],
                "summary": "Unggah logo",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Berhasil"}}
            }
        },
        "/api/v1/export/csv": {
            "get": {
                "tags": ["export"],
                "summary": "Ekspor CSV (tanggal, uraian, kategori, debet, kredit, saldo)",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "month", "in": "query", "type": "string"}],
                "responses": {"200": {"description": "Berkas CSV"}}
            }
        },
        "/api/v1/export/excel": {
            "get": {
                "tags": ["export"],
                "summary": "Ekspor Excel",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "month", "in": "query", "type": "string"}],
                "responses": {"200": {"description": "Berkas Excel"}}
            }
        },
        "/api/v1/export/email": {
            "post": {
                "tags": ["export"],
                "summary": "Kirim laporan via email",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Berhasil"}}
            }
        },
        "/api/v1/report/print": {
            "get": {
                "tags": ["export"],
                "summary": "Dokumen laporan siap cetak",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "month", "in": "query", "type": "string"}],
                "responses": {"200": {"description": "Dokumen HTML"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "API Administrasi Masjid Baitul Mannan",
	Description:      "API keuangan, inventaris, kegiatan, dan pengaturan masjid dengan dua peran pengguna (admin dan warga)",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
