package session

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/sitrack/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/sitrack/internal/common"
	"github.com/dmitrijs2005/sitrack/internal/cryptox"
	"github.com/dmitrijs2005/sitrack/internal/dbx"
)

// storageKeySalt holds the Argon2 salt when the token is sealed.
const storageKeySalt = "token_salt"

// Persisted is what survives a restart.
type Persisted struct {
	Token    string
	Username string
	Role     string
}

// Storage is the durable home of the session.
type Storage interface {
	Load(ctx context.Context) (Persisted, error)
	Save(ctx context.Context, p Persisted) error
	Clear(ctx context.Context) error
}

// MetadataStorage keeps the session in the local metadata table. With a
// non-empty secret the token is sealed with cryptox before it is written.
type MetadataStorage struct {
	db     *sql.DB
	secret []byte
}

func NewMetadataStorage(db *sql.DB, secret []byte) *MetadataStorage {
	return &MetadataStorage{db: db, secret: secret}
}

func (s *MetadataStorage) Load(ctx context.Context) (Persisted, error) {
	repo := metadata.NewSQLiteRepository(s.db)

	values, err := repo.List(ctx)
	if err != nil {
		return Persisted{}, err
	}
	raw, ok := values[common.StorageKeyToken]
	if !ok || len(raw) == 0 {
		return Persisted{}, nil
	}

	token := raw
	if len(s.secret) > 0 {
		salt := values[storageKeySalt]
		if len(salt) == 0 {
			return Persisted{}, fmt.Errorf("%w: sealed token without salt", common.ErrDecode)
		}
		sealer, err := cryptox.NewSealer(s.secret, salt)
		if err != nil {
			return Persisted{}, err
		}
		if token, err = sealer.Open(raw); err != nil {
			return Persisted{}, fmt.Errorf("%w: %v", common.ErrDecode, err)
		}
	}

	return Persisted{
		Token:    string(token),
		Username: string(values[common.StorageKeyUsername]),
		Role:     string(values[common.StorageKeyRole]),
	}, nil
}

func (s *MetadataStorage) Save(ctx context.Context, p Persisted) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)

		values := map[string][]byte{
			common.StorageKeyToken:    []byte(p.Token),
			common.StorageKeyUsername: []byte(p.Username),
			common.StorageKeyRole:     []byte(p.Role),
		}

		if len(s.secret) > 0 {
			salt, err := repo.Get(ctx, storageKeySalt)
			if err != nil {
				return err
			}
			if len(salt) == 0 {
				if salt, err = cryptox.NewSalt(); err != nil {
					return err
				}
				values[storageKeySalt] = salt
			}
			sealer, err := cryptox.NewSealer(s.secret, salt)
			if err != nil {
				return err
			}
			if values[common.StorageKeyToken], err = sealer.Seal([]byte(p.Token)); err != nil {
				return err
			}
		}

		return repo.SetMany(ctx, values)
	})
}

func (s *MetadataStorage) Clear(ctx context.Context) error {
	repo := metadata.NewSQLiteRepository(s.db)
	return repo.Delete(ctx, common.StorageKeyToken, common.StorageKeyUsername, common.StorageKeyRole)
}

// MemoryStorage is a Storage for tests and throwaway runs.
type MemoryStorage struct {
	mu      sync.Mutex
	p       Persisted
	LoadErr error
	SaveErr error
}

func NewMemoryStorage(p Persisted) *MemoryStorage {
	return &MemoryStorage{p: p}
}

func (m *MemoryStorage) Load(context.Context) (Persisted, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return Persisted{}, m.LoadErr
	}
	return m.p, nil
}

func (m *MemoryStorage) Save(_ context.Context, p Persisted) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.p = p
	return nil
}

func (m *MemoryStorage) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.p = Persisted{}
	return nil
}

// Snapshot returns what is currently stored.
func (m *MemoryStorage) Snapshot() Persisted {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.p
}
