package registry

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/store-finance-api/infrastructure/repository"
	"github.com/vfg2006/store-finance-api/internal/domain"
	"github.com/vfg2006/store-finance-api/pkg/utils"
)

type EmployeeService interface {
	List(ctx context.Context, principal *domain.Principal, storeID string, onlyActive bool) ([]*domain.Employee, error)
	Create(ctx context.Context, principal *domain.Principal, employee *domain.Employee) (*domain.Employee, error)
	SetActive(ctx context.Context, principal *domain.Principal, id string, active bool) error
	Payroll(ctx context.Context, principal *domain.Principal, storeID string) (*domain.PayrollSummary, error)
}

type employeeService struct {
	employeeRepo repository.EmployeeRepository
	storeRepo    repository.StoreRepository
}

func NewEmployeeService(employeeRepo repository.EmployeeRepository, storeRepo repository.StoreRepository) EmployeeService {
	return &employeeService{
		employeeRepo: employeeRepo,
		storeRepo:    storeRepo,
	}
}

func (s *employeeService) List(ctx context.Context, principal *domain.Principal, storeID string, onlyActive bool) ([]*domain.Employee, error) {
	scoped, ok := principal.ScopeStore(storeID)
	if !ok {
		return nil, errForbiddenStore(storeID)
	}

	employees, err := s.employeeRepo.List(ctx, domain.EmployeeFilter{
		CompanyID:  principal.ScopeCompany(""),
		StoreID:    scoped,
		OnlyActive: onlyActive,
	})
	if err != nil {
		return nil, errDatabase(err, "Erro ao listar funcionários")
	}
	return employees, nil
}

func (s *employeeService) Create(ctx context.Context, principal *domain.Principal, employee *domain.Employee) (*domain.Employee, error) {
	employee.Name = strings.TrimSpace(employee.Name)
	if employee.Name == "" {
		return nil, errMissingData("Nome do funcionário é obrigatório")
	}
	if anyNegative(employee.Salary, employee.Allowance, employee.Transport) {
		return nil, errInvalidFormat("Salário, ajuda de custo e passagem não podem ser negativos")
	}

	employee.CompanyID = principal.ScopeCompany(employee.CompanyID)
	if employee.StoreID != nil && *employee.StoreID != "" {
		store, err := s.storeRepo.GetByID(ctx, *employee.StoreID)
		if err != nil {
			return nil, errDatabase(err, "Erro ao buscar loja do funcionário")
		}
		if store == nil {
			return nil, errNotFound(*employee.StoreID, "Loja não encontrada")
		}
		if !principal.CanWrite(store.CompanyID, store.ID) {
			return nil, errForbiddenStore(store.ID)
		}
		employee.CompanyID = store.CompanyID
		employee.StoreName = store.Name
	}
	employee.Active = true

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, errDatabase(err, "Erro ao cadastrar funcionário")
	}
	return employee, nil
}

func (s *employeeService) SetActive(ctx context.Context, principal *domain.Principal, id string, active bool) error {
	if err := s.employeeRepo.SetActive(ctx, principal.CompanyRestriction(), id, active); err != nil {
		if domain.IsNotFound(err) {
			return errNotFound(id, "Funcionário não encontrado")
		}
		return errDatabase(err, "Erro ao alterar situação do funcionário")
	}
	return nil
}

// Payroll resume a folha dos funcionários ativos
func (s *employeeService) Payroll(ctx context.Context, principal *domain.Principal, storeID string) (*domain.PayrollSummary, error) {
	employees, err := s.List(ctx, principal, storeID, true)
	if err != nil {
		return nil, err
	}
	return SummarizePayroll(employees), nil
}

// SummarizePayroll soma salário, ajuda de custo e passagem dos funcionários
func SummarizePayroll(employees []*domain.Employee) *domain.PayrollSummary {
	summary := &domain.PayrollSummary{Employees: len(employees)}

	for _, e := range employees {
		summary.Salaries = summary.Salaries.Add(domain.OrZero(e.Salary))
		summary.Allowances = summary.Allowances.Add(domain.OrZero(e.Allowance))
		summary.Transport = summary.Transport.Add(domain.OrZero(e.Transport))
		summary.Total = summary.Total.Add(e.MonthlyCost())
	}

	summary.TotalLabel = utils.FormatBRL(summary.Total)
	return summary
}

func anyNegative(values ...decimal.NullDecimal) bool {
	for _, v := range values {
		if domain.OrZero(v).IsNegative() {
			return true
		}
	}
	return false
}
