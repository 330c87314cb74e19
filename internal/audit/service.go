package audit

import (
	"encoding/json"
	"fmt"

	"github.com/fabiiianac15/capri-system-sub000/internal/auth"
	"github.com/fabiiianac15/capri-system-sub000/internal/database"
	"github.com/fabiiianac15/capri-system-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
)

type LogOptions struct {
	UserID      uint
	UserName    string
	EntityType  string
	EntityID    uint
	Action      models.AuditAction
	Description string
	Before      any
	After       any
}

// WriteLog registra un movimiento en la bitácora. Los snapshots van como
// JSON; la columna es jsonb, así que un valor ausente se guarda como "null".
func WriteLog(opts LogOptions) error {
	beforeStr := "null"
	afterStr := "null"

	if opts.Before != nil {
		if b, err := json.Marshal(opts.Before); err == nil {
			beforeStr = string(b)
		}
	}
	if opts.After != nil {
		if b, err := json.Marshal(opts.After); err == nil {
			afterStr = string(b)
		}
	}

	entry := models.AuditLog{
		UserID:      opts.UserID,
		UserName:    opts.UserName,
		EntityType:  opts.EntityType,
		EntityID:    opts.EntityID,
		Action:      opts.Action,
		Description: opts.Description,
		BeforeData:  beforeStr,
		AfterData:   afterStr,
	}

	if err := database.DB.Create(&entry).Error; err != nil {
		return fmt.Errorf("no se pudo guardar el registro de auditoría: %w", err)
	}
	return nil
}

// RequestUser resuelve el usuario autenticado de la petición actual.
func RequestUser(c *fiber.Ctx) (uint, string, error) {
	userID, err := auth.CurrentUserID(c)
	if err != nil {
		return 0, "", err
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return 0, "", fmt.Errorf("usuario no encontrado: %w", err)
	}
	return userID, user.Name, nil
}
