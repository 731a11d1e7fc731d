package registry

import (
	"context"
	"strings"

	"github.com/vfg2006/store-finance-api/infrastructure/repository"
	"github.com/vfg2006/store-finance-api/internal/domain"
	"github.com/vfg2006/store-finance-api/pkg/utils"
)

type MaintenanceService interface {
	List(ctx context.Context, principal *domain.Principal, storeID string, status domain.MaintenanceStatus) ([]*domain.MaintenanceTicket, error)
	Create(ctx context.Context, principal *domain.Principal, ticket *domain.MaintenanceTicket) (*domain.MaintenanceTicket, error)
	UpdateStatus(ctx context.Context, principal *domain.Principal, id string, status domain.MaintenanceStatus) error
}

type maintenanceService struct {
	maintenanceRepo repository.MaintenanceRepository
	storeRepo       repository.StoreRepository
	newCode         func() (string, error)
}

func NewMaintenanceService(maintenanceRepo repository.MaintenanceRepository, storeRepo repository.StoreRepository) MaintenanceService {
	return &maintenanceService{
		maintenanceRepo: maintenanceRepo,
		storeRepo:       storeRepo,
		newCode:         utils.GenerateID,
	}
}

func (s *maintenanceService) List(ctx context.Context, principal *domain.Principal, storeID string, status domain.MaintenanceStatus) ([]*domain.MaintenanceTicket, error) {
	if status != "" && !status.IsValid() {
		return nil, errInvalidStatus("Status de manutenção inválido: " + string(status))
	}

	scoped, ok := principal.ScopeStore(storeID)
	if !ok {
		return nil, errForbiddenStore(storeID)
	}

	tickets, err := s.maintenanceRepo.List(ctx, domain.MaintenanceFilter{
		CompanyID: principal.ScopeCompany(""),
		StoreID:   scoped,
		Status:    status,
	})
	if err != nil {
		return nil, errDatabase(err, "Erro ao listar ordens de serviço")
	}
	return tickets, nil
}

// Create abre a ordem de serviço calculando valor total e lucro líquido
func (s *maintenanceService) Create(ctx context.Context, principal *domain.Principal, ticket *domain.MaintenanceTicket) (*domain.MaintenanceTicket, error) {
	ticket.CustomerName = strings.TrimSpace(ticket.CustomerName)
	ticket.Device = strings.TrimSpace(ticket.Device)

	scoped, ok := principal.ScopeStore(ticket.StoreID)
	if !ok {
		return nil, errForbiddenStore(ticket.StoreID)
	}
	ticket.StoreID = scoped
	if ticket.StoreID == "" || ticket.CustomerName == "" || ticket.Device == "" {
		return nil, errMissingData("Loja, cliente e aparelho são obrigatórios")
	}
	if ticket.PaymentMethod != nil && *ticket.PaymentMethod != "" && !domain.PaymentMethods[*ticket.PaymentMethod] {
		return nil, errInvalidFormat("Forma de pagamento inválida: " + *ticket.PaymentMethod)
	}
	if anyNegative(ticket.LaborAmount, ticket.PartsAmount, ticket.PartsCost, ticket.MachineFee) {
		return nil, errInvalidFormat("Valores da ordem de serviço não podem ser negativos")
	}

	if ticket.Status == "" {
		ticket.Status = domain.MaintenanceStatusPending
	}
	if !ticket.Status.IsValid() {
		return nil, errInvalidStatus("Status de manutenção inválido: " + string(ticket.Status))
	}

	store, err := s.storeRepo.GetByID(ctx, ticket.StoreID)
	if err != nil {
		return nil, errDatabase(err, "Erro ao buscar loja da ordem de serviço")
	}
	if store == nil {
		return nil, errNotFound(ticket.StoreID, "Loja não encontrada")
	}
	if !principal.CanWrite(store.CompanyID, store.ID) {
		return nil, errForbiddenStore(store.ID)
	}
	ticket.CompanyID = store.CompanyID
	ticket.StoreName = store.Name

	code, err := s.newCode()
	if err != nil {
		return nil, errInternal(err, "Erro ao gerar código da ordem de serviço")
	}
	ticket.Code = code
	ticket.Recompute()

	if err := s.maintenanceRepo.Create(ctx, ticket); err != nil {
		return nil, errDatabase(err, "Erro ao criar ordem de serviço")
	}
	return ticket, nil
}

// UpdateStatus avança a ordem de serviço respeitando as transições permitidas
func (s *maintenanceService) UpdateStatus(ctx context.Context, principal *domain.Principal, id string, status domain.MaintenanceStatus) error {
	if !status.IsValid() {
		return errInvalidStatus("Status de manutenção inválido: " + string(status))
	}

	ticket, err := s.maintenanceRepo.GetByID(ctx, id)
	if err != nil {
		return errDatabase(err, "Erro ao buscar ordem de serviço")
	}
	if ticket == nil {
		return errNotFound(id, "Ordem de serviço não encontrada")
	}
	if !principal.CanWrite(ticket.CompanyID, ticket.StoreID) {
		return errForbiddenStore(ticket.StoreID)
	}
	if !ticket.Status.CanTransitionTo(status) {
		return errInvalidStatus("Ordem de serviço não pode ir de " + string(ticket.Status) + " para " + string(status))
	}

	if err := s.maintenanceRepo.UpdateStatus(ctx, id, status); err != nil {
		if domain.IsNotFound(err) {
			return errNotFound(id, "Ordem de serviço não encontrada")
		}
		return errDatabase(err, "Erro ao atualizar ordem de serviço")
	}
	return nil
}
