package container

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oksasatya/postboard/internal/domain/event"
	"github.com/oksasatya/postboard/internal/infrastructure/memory"
)

func TestDefaults(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	assert.IsType(t, event.Nop{}, GetEvents())
	assert.NotNil(t, GetLogger())
	assert.NotNil(t, GetConfig())
	assert.Nil(t, GetRedis())
}

func TestRepositoriesOverride(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	store := memory.NewStore()
	SetRepositories(store.Users(), store.Posts(), store.Comments())

	u, p, c := Repositories()
	assert.IsType(t, &memory.UserRepository{}, u)
	assert.IsType(t, &memory.PostRepository{}, p)
	assert.IsType(t, &memory.CommentRepository{}, c)
}
