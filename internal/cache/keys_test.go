package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{
			name:        "without paramsKey",
			serviceName: "feedback",
			objectType:  "text",
			identifier:  "abc",
			expectedKey: "quizterminal:feedback:text:abc",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "feedback",
			objectType:  "text",
			identifier:  "abc",
			paramsKey:   []string{},
			expectedKey: "quizterminal:feedback:text:abc",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "quiz",
			objectType:  "set",
			identifier:  "01HZX",
			paramsKey:   []string{"ciencia", "medio"},
			expectedKey: "quizterminal:quiz:set:01HZX:ciencia_medio",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedKey, GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...))
		})
	}
}

func TestHashText(t *testing.T) {
	a := HashText("¿Capital de Francia?", "Paris")
	assert.Len(t, a, 64)
	assert.Equal(t, a, HashText("¿Capital de Francia?", "Paris"))
	// Part boundaries matter.
	assert.NotEqual(t, HashText("ab", "c"), HashText("a", "bc"))
}
