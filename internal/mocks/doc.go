// Package mocks provides hand-written mocks of the store, service and
// session interfaces for tests.
//
// Every mock has a function field per method. When the field is nil the mock
// returns its default values, so tests set only what they care about:
//
//	import "github.com/phrazzld/deckstudy/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    decks := &mocks.MockDeckStore{
//	        GetByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Deck, error) {
//	            return nil, store.ErrDeckNotFound
//	        },
//	    }
//
//	    // Use the mock in your test...
//	}
//
// Store mocks return themselves from WithTx and count the calls in TxCount,
// so transactional service code can be tested with go-sqlmock.
package mocks
