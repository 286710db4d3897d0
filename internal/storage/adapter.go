package storage

import (
	"errors"
	"portfolio/internal/providers"
	"sort"

	json "github.com/goccy/go-json"
)

// StoreInterface is the JSON view over a Backend. None of its methods
// report errors: failures are logged, counted and turned into false/absent.
type StoreInterface interface {
	Save(key string, value any) bool
	Load(key string, dst any) bool
	Remove(key string)
	Clear()
	Exists(key string) bool
	Size(key string) int
	TotalSize() int
	Keys() []string
}

// ContentStore holds the content collections as plain JSON.
type ContentStore interface {
	StoreInterface
}

// AuthStore holds the auth state, passed through an obfuscation codec.
type AuthStore interface {
	StoreInterface
}

type Adapter struct {
	backend Backend
	codec   Codec
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
}

func NewAdapter(backend Backend, codec Codec, logger providers.Logger, metrics providers.MetricsProviderInterface) *Adapter {
	if codec == nil {
		codec = IdentityCodec{}
	}
	return &Adapter{
		backend: backend,
		codec:   codec,
		logger:  logger,
		metrics: metrics,
	}
}

func (a *Adapter) fail(op, key string, err error) {
	a.logger.Warnf(providers.TypeStorage, "%s %q failed: %s", op, key, err)
	a.metrics.IncStorageFailures(op)
}

func (a *Adapter) Save(key string, value any) bool {
	data, err := json.Marshal(value)
	if err != nil {
		a.fail("save", key, err)
		return false
	}
	if err := a.backend.Put(key, a.codec.Encode(data)); err != nil {
		a.fail("save", key, err)
		return false
	}
	return true
}

func (a *Adapter) Load(key string, dst any) bool {
	raw, err := a.backend.Get(key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			a.fail("load", key, err)
		}
		return false
	}
	data, ok := a.codec.Decode(raw)
	if !ok {
		a.fail("decode", key, errors.New("value is not in codec format"))
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		a.fail("load", key, err)
		return false
	}
	return true
}

func (a *Adapter) Remove(key string) {
	if err := a.backend.Delete(key); err != nil {
		a.fail("remove", key, err)
	}
}

func (a *Adapter) Clear() {
	if err := a.backend.Clear(); err != nil {
		a.fail("clear", "*", err)
	}
}

func (a *Adapter) Exists(key string) bool {
	_, err := a.backend.Get(key)
	return err == nil
}

// Size returns the number of bytes stored under key, 0 when absent.
func (a *Adapter) Size(key string) int {
	raw, err := a.backend.Get(key)
	if err != nil {
		return 0
	}
	return len(key) + len(raw)
}

func (a *Adapter) TotalSize() int {
	total := 0
	for _, k := range a.Keys() {
		total += a.Size(k)
	}
	return total
}

func (a *Adapter) Keys() []string {
	keys, err := a.backend.Keys()
	if err != nil {
		a.fail("keys", "*", err)
		return nil
	}
	sort.Strings(keys)
	return keys
}

func NewContentStoreProvider(backend Backend, logger providers.Logger, metrics providers.MetricsProviderInterface) ContentStore {
	return NewAdapter(backend, IdentityCodec{}, logger, metrics)
}

func NewAuthStoreProvider(backend Backend, logger providers.Logger, metrics providers.MetricsProviderInterface) AuthStore {
	return NewAdapter(backend, Base64Codec{}, logger, metrics)
}
