package auth

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// Names accepted by NewHasher.
const (
	HasherBcrypt   = "bcrypt"
	HasherArgon2id = "argon2id"
)

// Hasher turns a plaintext password into an opaque, salted, one-way string
// and verifies candidates against it in constant time.
type Hasher interface {
	Hash(plain string) (string, error)
	Compare(plain, hash string) bool
}

// NewHasher returns the hasher registered under name.
func NewHasher(name string) (Hasher, error) {
	switch name {
	case HasherBcrypt, "":
		return NewBcryptHasher(bcrypt.DefaultCost), nil
	case HasherArgon2id:
		return NewArgon2Hasher(), nil
	default:
		return nil, fmt.Errorf("unknown password hasher %q", name)
	}
}

type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("%w: password too long", common.ErrValidation)
		}
		return "", err
	}
	return string(b), nil
}

func (h *BcryptHasher) Compare(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// Argon2Hasher encodes hashes in the PHC string format:
//
//	$argon2id$v=19$m=<KiB>,t=<iterations>,p=<threads>$<salt>$<key>
type Argon2Hasher struct {
	time    uint32
	memory  uint32
	threads uint8
	keyLen  uint32
	saltLen int
}

// NewArgon2Hasher uses the RFC 9106 second recommended parameter set.
func NewArgon2Hasher() *Argon2Hasher {
	return &Argon2Hasher{time: 3, memory: 64 * 1024, threads: 4, keyLen: 32, saltLen: 16}
}

func (h *Argon2Hasher) Hash(plain string) (string, error) {
	salt := common.GenerateRandByteArray(h.saltLen)
	if salt == nil {
		return "", errors.New("argon2: cannot read random salt")
	}

	pw := []byte(plain)
	defer common.WipeByteArray(pw)

	key := argon2.IDKey(pw, salt, h.time, h.memory, h.threads, h.keyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.memory, h.time, h.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

func (h *Argon2Hasher) Compare(plain, hash string) bool {
	p, salt, key, err := decodeArgon2(hash)
	if err != nil {
		return false
	}

	pw := []byte(plain)
	defer common.WipeByteArray(pw)

	candidate := argon2.IDKey(pw, salt, p.time, p.memory, p.threads, uint32(len(key)))
	return subtle.ConstantTimeCompare(candidate, key) == 1
}

var errBadArgon2Hash = errors.New("argon2: malformed hash")

func decodeArgon2(encoded string) (*Argon2Hasher, []byte, []byte, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != HasherArgon2id {
		return nil, nil, nil, errBadArgon2Hash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return nil, nil, nil, errBadArgon2Hash
	}

	p := &Argon2Hasher{}
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.memory, &p.time, &p.threads); err != nil {
		return nil, nil, nil, errBadArgon2Hash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, nil, errBadArgon2Hash
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return nil, nil, nil, errBadArgon2Hash
	}

	return p, salt, key, nil
}
