package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/venuelaunch/venuelaunch/internal/database/schema"
	"github.com/venuelaunch/venuelaunch/internal/domain"
	"github.com/venuelaunch/venuelaunch/pkg/crypto"
)

// InitializeDatabase creates all necessary database tables if they don't exist
// and seeds the root CMS admin when credentials are configured.
func InitializeDatabase(db *sql.DB, rootAdminEmail, rootAdminPassword string) error {
	// Run all table creation queries
	for _, query := range schema.TableDefinitions {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	// Create root CMS admin if it doesn't exist
	if rootAdminEmail != "" && rootAdminPassword != "" {
		var exists bool
		err := db.QueryRow("SELECT EXISTS(SELECT 1 FROM cms_admins WHERE email = $1)", rootAdminEmail).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check root admin existence: %w", err)
		}

		if !exists {
			passwordHash, err := crypto.HashPassword(rootAdminPassword)
			if err != nil {
				return fmt.Errorf("failed to hash root admin password: %w", err)
			}

			rootAdmin := &domain.CmsAdmin{
				ID:           uuid.New().String(),
				Email:        rootAdminEmail,
				PasswordHash: passwordHash,
				Name:         "Root Admin",
				Role:         domain.CMSRoleSuperAdmin,
				IsActive:     true,
				CreatedAt:    time.Now().UTC(),
			}

			query := `
				INSERT INTO cms_admins (id, email, password_hash, name, role, is_active, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			`
			_, err = db.Exec(query,
				rootAdmin.ID,
				rootAdmin.Email,
				rootAdmin.PasswordHash,
				rootAdmin.Name,
				rootAdmin.Role,
				rootAdmin.IsActive,
				rootAdmin.CreatedAt,
			)
			if err != nil {
				return fmt.Errorf("failed to create root admin: %w", err)
			}
		}
	}

	return nil
}
