package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/rekberid/rekber/internal/pkg/models"
)

// EscrowRepo implements the escrow repository interface
type EscrowRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewEscrowRepo creates a new escrow repository instance
func NewEscrowRepo(cfg *models.Config, db *sqlx.DB) *EscrowRepo {
	return &EscrowRepo{
		cfg: cfg,
		db:  db,
	}
}
