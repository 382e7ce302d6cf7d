package document

import (
	"context"
	"fmt"

	"github.com/jhoicas/freshstock-api/internal/domain"
	"github.com/jhoicas/freshstock-api/internal/domain/entity"
	"github.com/jhoicas/freshstock-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepository)(nil)

// UserRepository lectura de usuarios del documento.
type UserRepository struct {
	session Session
}

// NewUserRepository construye el repositorio.
func NewUserRepository(session Session) *UserRepository {
	return &UserRepository{session: session}
}

// List devuelve todos los usuarios.
func (r *UserRepository) List(ctx context.Context) ([]entity.User, error) {
	out := []entity.User{}
	err := r.session.View(ctx, func(doc *entity.Document) error {
		out = append(out, doc.Users...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID busca un usuario por id.
func (r *UserRepository) GetByID(ctx context.Context, id int) (*entity.User, error) {
	return r.find(ctx, func(u entity.User) bool { return u.ID == id }, fmt.Sprintf("usuario %d", id))
}

// FindByUsername recorre la lista de usuarios buscando coincidencia exacta.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.find(ctx, func(u entity.User) bool { return u.Username == username }, "usuario "+username)
}

func (r *UserRepository) find(ctx context.Context, match func(entity.User) bool, what string) (*entity.User, error) {
	var out *entity.User
	err := r.session.View(ctx, func(doc *entity.Document) error {
		for _, u := range doc.Users {
			if match(u) {
				c := u
				out = &c
				return nil
			}
		}
		return fmt.Errorf("%s: %w", what, domain.ErrNotFound)
	})
	return out, err
}
