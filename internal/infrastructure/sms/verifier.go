package sms

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
	"time"

	"bazroba/pkg/logger"
)

const codeTTL = 5 * time.Minute

type codeEntry struct {
	code      string
	expiresAt time.Time
}

// Verifier holds pending phone verification codes. The cache is in-process
// and non-durable: a restart invalidates all pending codes.
type Verifier struct {
	mu     sync.Mutex
	codes  map[string]codeEntry
	sender Sender
	now    func() time.Time
}

func NewVerifier(sender Sender) *Verifier {
	return &Verifier{
		codes:  make(map[string]codeEntry),
		sender: sender,
		now:    time.Now,
	}
}

// SendCode generates a 6-digit code, stores it with a 5-minute expiry and
// sends it. Delivery failures are logged, not surfaced: the code stays valid
// and the caller's flow continues.
func (v *Verifier) SendCode(ctx context.Context, phone string) {
	code := generateCode()

	v.mu.Lock()
	v.codes[phone] = codeEntry{code: code, expiresAt: v.now().Add(codeTTL)}
	v.mu.Unlock()

	if err := v.sender.Send(ctx, phone, "Your verification code is: "+code); err != nil {
		logger.Warn("Failed to send verification code to %s: %v", phone, err)
	}
	logger.Debug("Verification code for %s: %s", phone, code)
}

// Verify checks the code for a phone number. A successful check consumes the
// code; expired codes are dropped.
func (v *Verifier) Verify(phone, code string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	entry, ok := v.codes[phone]
	if !ok {
		return false
	}
	if v.now().After(entry.expiresAt) {
		delete(v.codes, phone)
		return false
	}
	if entry.code != code {
		return false
	}
	delete(v.codes, phone)
	return true
}

func generateCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		// crypto/rand failing is effectively unrecoverable; fall back to a
		// constant-free zero code rather than panicking the request path.
		n = big.NewInt(0)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000)
}
