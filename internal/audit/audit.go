// Package audit registra a trilha de auditoria das operações de escrita.
// A escrita é de melhor esforço: uma falha aqui nunca falha a operação
// auditada, apenas gera log.
package audit

import (
	"time"

	"github.com/salonops/salon-manager-api/infrastructure/repository"
	"github.com/salonops/salon-manager-api/internal/domain"
	"github.com/salonops/salon-manager-api/pkg/log"
	"github.com/salonops/salon-manager-api/pkg/utils"
)

type Recorder interface {
	Record(tableName, recordID string, action domain.AuditAction, oldValues, newValues any, changedBy, storeID string)
}

type recorder struct {
	auditRepo repository.AuditLogRepository
}

func NewRecorder(auditRepo repository.AuditLogRepository) Recorder {
	return &recorder{
		auditRepo: auditRepo,
	}
}

func (r *recorder) Record(tableName, recordID string, action domain.AuditAction, oldValues, newValues any, changedBy, storeID string) {
	id, err := utils.GenerateID()
	if err != nil {
		log.L.WithError(err).Error("Erro ao gerar identificador de auditoria")
		return
	}

	entry := &domain.AuditLog{
		ID:        id,
		TableName: tableName,
		RecordID:  recordID,
		Action:    action,
		OldValues: oldValues,
		NewValues: newValues,
		ChangedBy: changedBy,
		StoreID:   storeID,
		Timestamp: time.Now(),
	}

	if err := r.auditRepo.Create(entry); err != nil {
		log.L.WithError(err).WithFields(log.Fields{
			"table_name": tableName,
			"record_id":  recordID,
			"action":     action,
		}).Error("Erro ao registrar evento de auditoria")
	}
}
