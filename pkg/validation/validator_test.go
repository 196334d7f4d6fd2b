package validation

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email string  `json:"email" binding:"required,email,max=256"`
	Name  string  `json:"name" binding:"notblank"`
	Note  *string `json:"note" binding:"omitempty,notblank"`
}

func bind(t *testing.T, body string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	Init()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	var s sample
	return c.ShouldBindJSON(&s)
}

func TestToDetailsFieldErrors(t *testing.T) {
	err := bind(t, `{"email":"nope","name":"   "}`)
	require.Error(t, err)
	d := ToDetails(err)
	assert.Equal(t, "must be a valid email", d["email"])
	assert.Equal(t, "is required", d["name"])
}

func TestToDetailsUnknownField(t *testing.T) {
	err := bind(t, `{"email":"a@x.com","name":"A","admin":true}`)
	require.Error(t, err)
	assert.Equal(t, map[string]string{"admin": "unknown field"}, ToDetails(err))
}

func TestToDetailsPayloadErrors(t *testing.T) {
	assert.Equal(t, "invalid json", ToDetails(bind(t, `{"email":`))["payload"])
	assert.Equal(t, "invalid json", ToDetails(bind(t, `{"email":"a@x.com"`))["payload"])
	assert.Equal(t, "invalid json", ToDetails(bind(t, `{"email" 1}`))["payload"])
	assert.Equal(t, "body is required", ToDetails(bind(t, ``))["payload"])
	assert.Equal(t, "must be a string", ToDetails(bind(t, `{"email":1,"name":"A"}`))["email"])
}

func TestNotBlankPointer(t *testing.T) {
	assert.NoError(t, bind(t, `{"email":"a@x.com","name":"A"}`))
	err := bind(t, `{"email":"a@x.com","name":"A","note":" "}`)
	require.Error(t, err)
	assert.Equal(t, "is required", ToDetails(err)["note"])
}

func TestToDetailsNil(t *testing.T) {
	assert.Nil(t, ToDetails(nil))
}
