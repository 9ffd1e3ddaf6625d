// Package agentrepo persists the agent roster.
package agentrepo

import (
	"fueldelivery/internal/core/domain/model/agent"
	"fueldelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AgentDTO represents the database structure for agent aggregates.
type AgentDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ManagerID uuid.UUID `gorm:"type:uuid;not null;index:idx_agents_manager_status"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Contact   string    `gorm:"type:varchar(255);not null"`
	Status    int       `gorm:"type:smallint;not null;index:idx_agents_manager_status"`
	Version   int       `gorm:"type:int;not null;default:0"`
}

func (AgentDTO) TableName() string {
	return "agents"
}

func fromDomain(a *agent.Agent) AgentDTO {
	return AgentDTO{
		ID:        a.ID().Bytes(),
		ManagerID: a.ManagerID().Bytes(),
		Name:      a.Name(),
		Contact:   a.Contact(),
		Status:    int(a.Status()),
		Version:   a.Version(),
	}
}

func toDomain(dto AgentDTO) (*agent.Agent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	managerID, err := kernel.UUIDFromBytes(dto.ManagerID[:])
	if err != nil {
		return nil, err
	}
	return agent.RestoreAgent(id, managerID, dto.Name, dto.Contact, agent.Status(dto.Status), dto.Version)
}

func toDomainAll(dtos []AgentDTO) ([]*agent.Agent, error) {
	agents := make([]*agent.Agent, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		agents = append(agents, a)
	}
	return agents, nil
}
