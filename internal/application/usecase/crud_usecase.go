package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/garden-api/internal/application/dto"
	"github.com/jhoicas/garden-api/internal/application/mapper"
	"github.com/jhoicas/garden-api/internal/domain"
	"github.com/jhoicas/garden-api/internal/domain/repository"
)

// RepoSelector elige, dentro de una unidad de trabajo, el repositorio de la entidad E.
type RepoSelector[E any] func(uow repository.UnitOfWork) repository.Repository[E]

// CrudUseCase casos de uso CRUD genéricos para una entidad E expuesta como D.
// Cada operación usa una unidad de trabajo nueva.
type CrudUseCase[E any, D dto.Identified] struct {
	uows    repository.UnitOfWorkFactory
	repo    RepoSelector[E]
	profile mapper.Profile[E, D]
}

// NewCrudUseCase construye el caso de uso.
func NewCrudUseCase[E any, D dto.Identified](uows repository.UnitOfWorkFactory, repo RepoSelector[E], profile mapper.Profile[E, D]) *CrudUseCase[E, D] {
	return &CrudUseCase[E, D]{uows: uows, repo: repo, profile: profile}
}

// List devuelve todas las entidades ordenadas por id.
func (uc *CrudUseCase[E, D]) List(ctx context.Context) ([]D, error) {
	items, err := uc.repo(uc.uows.New()).GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return uc.profile.ToDTOs(items), nil
}

// GetByID devuelve (nil, nil) si no existe.
func (uc *CrudUseCase[E, D]) GetByID(ctx context.Context, id int64) (*D, error) {
	e, err := uc.repo(uc.uows.New()).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	out := uc.profile.ToDTO(e)
	return &out, nil
}

// Create persiste una entidad nueva y la devuelve con su id generado.
// El id que venga en el cuerpo se ignora.
func (uc *CrudUseCase[E, D]) Create(ctx context.Context, in D) (*D, error) {
	e, err := uc.profile.ToEntity(0, in, nil)
	if err != nil {
		return nil, err
	}
	uow := uc.uows.New()
	repo := uc.repo(uow)
	repo.Add(e)
	if err := uow.Save(ctx); err != nil {
		return nil, err
	}
	return uc.reload(ctx, repo, e)
}

// Update reemplaza por completo la entidad id. Devuelve (nil, nil) si no existe.
// Si el cuerpo trae un id distinto de cero debe coincidir con el de la ruta.
func (uc *CrudUseCase[E, D]) Update(ctx context.Context, id int64, in D) (*D, error) {
	if bodyID := in.Identifier(); bodyID != 0 && bodyID != id {
		return nil, fmt.Errorf("%w: el id del cuerpo (%d) no coincide con el de la ruta (%d)", domain.ErrInvalidInput, bodyID, id)
	}
	uow := uc.uows.New()
	repo := uc.repo(uow)
	current, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}
	e, err := uc.profile.ToEntity(id, in, current)
	if err != nil {
		return nil, err
	}
	repo.Update(e)
	if err := uow.Save(ctx); err != nil {
		return nil, err
	}
	return uc.reload(ctx, repo, e)
}

// reload relee la fila recién guardada para que la respuesta sea la misma que daría un GET
// (zona horaria y escala decimal las normaliza la base).
func (uc *CrudUseCase[E, D]) reload(ctx context.Context, repo repository.Repository[E], saved *E) (*D, error) {
	id := uc.profile.ToDTO(saved).Identifier()
	stored, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, fmt.Errorf("releer %d tras guardar: %w", id, domain.ErrNotFound)
	}
	out := uc.profile.ToDTO(stored)
	return &out, nil
}

// Delete elimina la entidad id. Devuelve domain.ErrNotFound si no existe.
func (uc *CrudUseCase[E, D]) Delete(ctx context.Context, id int64) error {
	uow := uc.uows.New()
	repo := uc.repo(uow)
	current, err := repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current == nil {
		return domain.ErrNotFound
	}
	repo.Remove(current)
	return uow.Save(ctx)
}
