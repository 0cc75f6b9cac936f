package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"tripplanner/internal/services"
)

func TestRunQuiz(t *testing.T) {
	svc := services.NewPersonalityService(nil, zap.NewNop())
	in := strings.NewReader("5\nmaybe\n4\n3\n2\n1\n")
	var out bytes.Buffer

	require.NoError(t, runQuiz(svc, in, &out))
	assert.Contains(t, out.String(), "Please answer 1-5")
	assert.Contains(t, out.String(), `"extraversion": 5`)
	assert.Contains(t, out.String(), `"agreeableness": 1`)
}

func TestRunQuiz_Aborted(t *testing.T) {
	svc := services.NewPersonalityService(nil, zap.NewNop())
	err := runQuiz(svc, strings.NewReader("5\n"), &bytes.Buffer{})
	assert.Error(t, err)
}
