package scheduling

import (
	"context"

	domain "github.com/kirienkoandrew/HairCut-1/internal/domain/scheduling"
	"github.com/kirienkoandrew/HairCut-1/internal/dto"
	"github.com/kirienkoandrew/HairCut-1/internal/httperr"
	"github.com/kirienkoandrew/HairCut-1/internal/models"
)

type ClientHistory struct {
	repo domain.Repository
}

func NewClientHistory(repo domain.Repository) *ClientHistory {
	return &ClientHistory{repo: repo}
}

// Execute returns the client plus their visits to this master, newest
// first. A client with no appointments for the calling master is
// reported as not found: masters never learn about foreign clients.
func (uc *ClientHistory) Execute(
	ctx context.Context,
	masterID uint,
	clientID uint,
) (*models.Client, []dto.AppointmentDTO, error) {

	client, err := uc.repo.GetClientByID(ctx, clientID)
	if err != nil {
		return nil, nil, err
	}

	appointments, err := uc.repo.ByClientAndMaster(ctx, client.ID, masterID)
	if err != nil {
		return nil, nil, err
	}

	if len(appointments) == 0 {
		return nil, nil, httperr.ErrBusinessField("not_found", "client", "Client not found.")
	}

	return client, toDTOs(appointments), nil
}
