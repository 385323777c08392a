package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"pet-care-platform/internal/platform/logger"
)

var (
	ErrNotFound = errors.New("not found")
)

const (
	dataFileName    = "petcare.json"
	sessionFileName = "session.json"
)

// Store es el núcleo de persistencia: un único blob JSON con todas las
// tablas, releído y reescrito completo en cada operación. Ese modelo
// read-modify-write es seguro solo porque hay un único proceso escritor;
// no hay coordinación entre procesos: un solo proceso debe ser el dueño del dir.
//
// El Store se construye explícitamente en el arranque y se pasa por
// referencia; no hay singleton global.
type Store struct {
	mu   sync.Mutex
	path string
	log  logger.Logger
	now  func() time.Time
}

// Open crea el Store sobre dir. Si no existe snapshot previo, siembra el
// dataset demo y lo persiste antes de devolver. Si existe pero es de una
// versión anterior, lo migra y persiste de inmediato.
func Open(dir string, log logger.Logger) (*Store, error) {
	if dir == "" {
		return nil, errors.New("localstore: dir required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("localstore: mkdir: %w", err)
	}
	if log == nil {
		log = logger.New(logger.Options{})
	}

	st := &Store{
		path: filepath.Join(dir, dataFileName),
		log:  log,
		now:  time.Now,
	}

	// Fuerza seed/migración en el arranque, no en el primer request.
	if _, err := st.load(); err != nil {
		return nil, err
	}
	return st, nil
}

// SessionPath devuelve la ruta del registro de sesión asociado al Store.
func (st *Store) SessionPath() string {
	return filepath.Join(filepath.Dir(st.path), sessionFileName)
}

// load lee el snapshot completo. Primera vez: siembra y persiste.
// Caller debe tener st.mu si va a mutar después.
func (st *Store) load() (schemaRecord, error) {
	raw, err := os.ReadFile(st.path)
	if err != nil {
		if os.IsNotExist(err) {
			s := seedSchema(st.now())
			st.log.Info("localstore seeded", map[string]any{
				"path":  st.path,
				"users": len(s.Users),
				"pets":  len(s.Pets),
			})
			if err := st.save(s); err != nil {
				return schemaRecord{}, err
			}
			return s, nil
		}
		return schemaRecord{}, fmt.Errorf("localstore: read: %w", err)
	}

	var s schemaRecord
	if err := json.Unmarshal(raw, &s); err != nil {
		return schemaRecord{}, fmt.Errorf("localstore: decode: %w", err)
	}

	if migrate(&s) {
		st.log.Info("localstore migrated", map[string]any{
			"path":    st.path,
			"version": s.SchemaVersion,
		})
		if err := st.save(s); err != nil {
			return schemaRecord{}, err
		}
	}

	return s, nil
}

// save reescribe el blob entero (write temp + rename, sin writes parciales).
func (st *Store) save(s schemaRecord) error {
	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("localstore: encode: %w", err)
	}

	tmp := st.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("localstore: write: %w", err)
	}
	if err := os.Rename(tmp, st.path); err != nil {
		return fmt.Errorf("localstore: rename: %w", err)
	}
	return nil
}

// view ejecuta fn sobre una lectura consistente del snapshot.
func (st *Store) view(fn func(s schemaRecord) error) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, err := st.load()
	if err != nil {
		return err
	}
	return fn(s)
}

// mutate ejecuta fn sobre el snapshot y persiste el resultado completo.
// Si fn falla, no se escribe nada.
func (st *Store) mutate(fn func(s *schemaRecord) error) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, err := st.load()
	if err != nil {
		return err
	}
	if err := fn(&s); err != nil {
		return err
	}
	return st.save(s)
}

// migrate aplica los pasos de upgrade por versión. Devuelve true si
// cambió algo y hay que persistir.
func migrate(s *schemaRecord) bool {
	changed := false

	version := s.SchemaVersion
	if version == 0 {
		// Blob anterior al tag de versión: users + pets solamente.
		version = 1
		changed = true
	}

	if version < 2 {
		if s.Ongs == nil {
			s.Ongs = []ongRecord{}
		}
		version = 2
		changed = true
	}

	if version < 3 {
		if s.Appointments == nil {
			s.Appointments = []appointmentRecord{}
		}
		if s.AdoptionInterests == nil {
			s.AdoptionInterests = []interestRecord{}
		}
		version = 3
		changed = true
	}

	// Back-fill por registro, independiente de la versión del blob.
	for i := range s.Users {
		if s.Users[i].Plan == "" {
			s.Users[i].Plan = "basic"
			changed = true
		}
		if s.Users[i].Favorites == nil {
			s.Users[i].Favorites = []string{}
			changed = true
		}
	}
	for i := range s.Pets {
		if s.Pets[i].Vaccines == nil {
			s.Pets[i].Vaccines = []vaccineRecord{}
			changed = true
		}
	}

	if s.SchemaVersion != version {
		s.SchemaVersion = version
	}
	return changed
}
