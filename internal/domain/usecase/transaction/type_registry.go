package transaction

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/amirhossein-jamali/transaction-report-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transaction-report-service/internal/domain/error"
	cacheport "github.com/amirhossein-jamali/transaction-report-service/internal/domain/port/cache"
	coreport "github.com/amirhossein-jamali/transaction-report-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/transaction-report-service/internal/domain/port/persistence"
)

// TypeRegistry resolves transaction type names to ids, creating missing types on first use
type TypeRegistry struct {
	cache  cacheport.Cache
	uow    persistence.UnitOfWork
	logger coreport.Logger
}

// NewTypeRegistry creates a new TypeRegistry
func NewTypeRegistry(cache cacheport.Cache, uow persistence.UnitOfWork, logger coreport.Logger) *TypeRegistry {
	return &TypeRegistry{
		cache:  cache,
		uow:    uow,
		logger: logger,
	}
}

// ResolveOrCreate returns the id for name. At most one row per name is ever
// created: losing an insert race re-reads the winner's row.
func (r *TypeRegistry) ResolveOrCreate(ctx context.Context, name string) (uint64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, errs.ErrEmptyTypeName
	}

	key := cacheport.TransactionTypeKey(name)
	if id, ok, err := r.lookupCache(ctx, key); err != nil || ok {
		return id, err
	}

	repo := r.uow.GetTransactionTypeRepository(ctx)

	transactionType, err := repo.GetByName(ctx, name)
	if errors.Is(err, errs.ErrTransactionTypeNotFound) {
		transactionType, err = r.create(ctx, repo, name)
	}
	if err != nil {
		return 0, err
	}

	if err := r.cache.Set(ctx, key, strconv.FormatUint(transactionType.ID, 10)); err != nil {
		return 0, err
	}

	return transactionType.ID, nil
}

func (r *TypeRegistry) lookupCache(ctx context.Context, key string) (uint64, bool, error) {
	raw, found, err := r.cache.Get(ctx, key)
	if err != nil || !found {
		return 0, false, err
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		r.logger.Warn("Ignoring malformed cached transaction type id", map[string]any{
			"key":   key,
			"value": raw,
		})
		return 0, false, nil
	}
	return id, true, nil
}

func (r *TypeRegistry) create(ctx context.Context, repo persistence.TransactionTypeRepository, name string) (*entity.TransactionType, error) {
	transactionType := &entity.TransactionType{Name: name}

	err := repo.Create(ctx, transactionType)
	if errors.Is(err, errs.ErrUniqueViolation) {
		r.logger.Debug("Transaction type created concurrently, re-reading", map[string]any{
			"name": name,
		})
		return repo.GetByName(ctx, name)
	}
	if err != nil {
		return nil, err
	}

	r.logger.Info("Transaction type registered", map[string]any{
		"name": name,
		"id":   transactionType.ID,
	})
	return transactionType, nil
}
