package repository

import (
	"github.com/AMIROUNI/SymptomCheck-sub001/internal/domain/entity"
	domainRepo "github.com/AMIROUNI/SymptomCheck-sub001/internal/domain/repository"

	"gorm.io/gorm"
)

type auditLogRepository struct{}

func NewAuditLogRepository() domainRepo.AuditLogRepository {
	return &auditLogRepository{}
}

func (r *auditLogRepository) Create(db *gorm.DB, auditLog *entity.AuditLog) error {
	return db.Create(auditLog).Error
}
