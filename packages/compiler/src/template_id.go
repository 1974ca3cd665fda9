package compiler

import (
	"crypto/sha1"
	"encoding/base64"
	"sync"
)

var (
	templateIDMutex sync.RWMutex
	templateID      = DefaultTemplateID
)

// DefaultTemplateID is the first 8 characters of the base64 SHA-1 of source
func DefaultTemplateID(source string) string {
	sum := sha1.Sum([]byte(source))
	return base64.StdEncoding.EncodeToString(sum[:])[:8]
}

// SetTemplateIDFunc replaces the process-wide template identity function. A
// nil fn restores DefaultTemplateID. fn must be a pure function of its input.
func SetTemplateIDFunc(fn func(source string) string) {
	templateIDMutex.Lock()
	defer templateIDMutex.Unlock()
	if fn == nil {
		fn = DefaultTemplateID
	}
	templateID = fn
}

func templateIDFunc() func(string) string {
	templateIDMutex.RLock()
	defer templateIDMutex.RUnlock()
	return templateID
}
