package repository

import (
	"github.com/AMIROUNI/SymptomCheck-sub001/internal/domain/entity"

	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(db *gorm.DB, auditLog *entity.AuditLog) error
}
