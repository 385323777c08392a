package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")

	// ErrInvalidCredentials cubre email desconocido Y password incorrecto.
	// No distinguimos entre ambos (anti-enumeración).
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
)

type Service struct {
	repo    Repository
	session SessionStore
	now     func() time.Time
}

func NewService(repo Repository, session SessionStore) *Service {
	return &Service{
		repo:    repo,
		session: session,
		now:     time.Now,
	}
}

type SignupInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Image    string
	Plan     Plan
	Location *LatLng
}

// Signup crea la cuenta y la deja como sesión activa.
// Si el email ya existe, NO muta el store.
func (s *Service) Signup(ctx context.Context, in SignupInput) (User, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" || strings.TrimSpace(in.Name) == "" {
		return User{}, ErrInvalidInput
	}

	// Solo ErrNotFound significa "email libre"; cualquier otra falla
	// de lectura del store se propaga en vez de crear un duplicado.
	switch _, err := s.repo.GetByEmail(ctx, email); {
	case err == nil:
		return User{}, ErrEmailTaken
	case !errors.Is(err, ErrNotFound):
		return User{}, err
	}

	plan := in.Plan
	if plan == "" {
		plan = PlanBasic
	}
	if !ValidPlan(plan) {
		return User{}, ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	now := s.now()
	u := User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: string(hash),
		Phone:        strings.TrimSpace(in.Phone),
		Image:        strings.TrimSpace(in.Image),
		Plan:         plan,
		Location:     in.Location,
		Favorites:    []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, err
	}
	if err := s.session.Put(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

// Login compara credenciales y establece la sesión.
// Ante cualquier mismatch la sesión previa queda intacta.
func (s *Service) Login(ctx context.Context, email, password string) (User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return User{}, ErrInvalidCredentials
	}

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return User{}, ErrInvalidCredentials
	}

	if err := s.session.Put(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

// Logout limpia solo el registro de sesión; el store no se toca.
func (s *Service) Logout(ctx context.Context) error {
	return s.session.Clear(ctx)
}

// Current devuelve el usuario de la sesión activa, si hay.
func (s *Service) Current(ctx context.Context) (User, bool, error) {
	return s.session.Get(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	return s.repo.GetByID(ctx, id)
}

type UpdateInput struct {
	Name     string
	Email    string
	Phone    string
	Image    string
	Plan     Plan
	Location *LatLng
}

// Update reemplaza el perfil completo del usuario, PRESERVANDO el hash
// de password almacenado: una edición de perfil nunca puede blanquearlo.
func (s *Service) Update(ctx context.Context, userID string, in UpdateInput) (User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return User{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" {
		return User{}, ErrInvalidInput
	}

	stored, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return User{}, ErrNotFound
	}

	plan := in.Plan
	if plan == "" {
		plan = stored.Plan
	}
	if !ValidPlan(plan) {
		return User{}, ErrInvalidInput
	}

	updated := stored
	updated.Name = strings.TrimSpace(in.Name)
	updated.Email = strings.TrimSpace(in.Email)
	updated.Phone = strings.TrimSpace(in.Phone)
	updated.Image = strings.TrimSpace(in.Image)
	updated.Plan = plan
	updated.Location = in.Location
	updated.UpdatedAt = s.now()
	// PasswordHash, Favorites y CreatedAt vienen de stored.

	if err := s.repo.Update(ctx, updated); err != nil {
		return User{}, err
	}

	if err := s.refreshSession(ctx, updated); err != nil {
		return User{}, err
	}
	return updated, nil
}

// AddFavorite agrega petID a favoritos (idempotente).
func (s *Service) AddFavorite(ctx context.Context, userID, petID string) (User, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return User{}, ErrInvalidInput
	}

	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return User{}, ErrNotFound
	}
	if u.HasFavorite(petID) {
		return u, nil
	}

	u.Favorites = append(u.Favorites, petID)
	u.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, u); err != nil {
		return User{}, err
	}
	if err := s.refreshSession(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

// RemoveFavorite saca petID de favoritos (idempotente).
func (s *Service) RemoveFavorite(ctx context.Context, userID, petID string) (User, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return User{}, ErrNotFound
	}
	if !u.HasFavorite(petID) {
		return u, nil
	}

	out := make([]string, 0, len(u.Favorites))
	for _, id := range u.Favorites {
		if id != petID {
			out = append(out, id)
		}
	}
	u.Favorites = out
	u.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, u); err != nil {
		return User{}, err
	}
	if err := s.refreshSession(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

// refreshSession actualiza la copia de sesión si corresponde al mismo usuario.
func (s *Service) refreshSession(ctx context.Context, u User) error {
	cur, ok, err := s.session.Get(ctx)
	if err != nil || !ok {
		return err
	}
	if cur.ID != u.ID {
		return nil
	}
	return s.session.Put(ctx, u)
}
