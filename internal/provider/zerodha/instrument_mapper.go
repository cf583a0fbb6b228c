package zerodha

import "sync"

// instrumentMapper caches the symbol-to-token mapping from the exchange
// instrument dump so the dump is fetched at most once per process.
type instrumentMapper struct {
	symbolToToken map[string]int
	isLoaded      bool
	mu            sync.RWMutex
}

func newInstrumentMapper() *instrumentMapper {
	return &instrumentMapper{symbolToToken: make(map[string]int)}
}

func (im *instrumentMapper) load(mappings map[string]int) {
	im.mu.Lock()
	defer im.mu.Unlock()

	for symbol, token := range mappings {
		im.symbolToToken[symbol] = token
	}
	im.isLoaded = true
}

func (im *instrumentMapper) getToken(symbol string) (int, bool) {
	im.mu.RLock()
	defer im.mu.RUnlock()

	token, exists := im.symbolToToken[symbol]
	return token, exists
}

func (im *instrumentMapper) loaded() bool {
	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.isLoaded
}
