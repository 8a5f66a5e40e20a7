package middleware

import (
	"testing"

	"safetrack-http-service/models"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	student := &models.Student{StudentID: "s1"}
	admin := &models.Student{StudentID: "admin", IsAdmin: true}

	assert.True(t, Authorize(student, RoleStudent))
	assert.True(t, Authorize(admin, RoleStudent))

	assert.False(t, Authorize(student, RoleAdmin))
	assert.True(t, Authorize(admin, RoleAdmin))

	assert.False(t, Authorize(nil, RoleStudent))
	assert.False(t, Authorize(nil, RoleAdmin))
	assert.False(t, Authorize(student, "unknown-role"))
}

func TestExtractToken(t *testing.T) {
	assert.Equal(t, "abc", extractToken("Bearer abc"))
	// 没有Bearer前缀时按原样处理
	assert.Equal(t, "abc", extractToken("abc"))
}
