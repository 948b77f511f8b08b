package mongo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/99minutos/user-registry/internal/core/domain"
)

func TestUserDocument_RoundTrip(t *testing.T) {
	created := time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC)
	in := domain.NewUser(1709251199, "Jane Doe", "jane@example.com", created)

	doc := toDocument(in)
	assert.False(t, doc.ObjectID.IsZero())

	raw, err := bson.Marshal(doc)
	assert.NoError(t, err)

	var decoded userDocument
	assert.NoError(t, bson.Unmarshal(raw, &decoded))
	assert.Equal(t, *in, *decoded.toDomain())
}

func TestUserDocument_RoundTripKeepsMilliseconds(t *testing.T) {
	created := time.Date(2024, 2, 29, 23, 59, 59, 123_456_789, time.UTC).Truncate(time.Millisecond)
	in := domain.NewUser(1709251199, "Jane Doe", "jane@example.com", created)

	raw, err := bson.Marshal(toDocument(in))
	assert.NoError(t, err)

	var decoded userDocument
	assert.NoError(t, bson.Unmarshal(raw, &decoded))
	out := decoded.toDomain()
	assert.True(t, out.CreatedAt.Equal(in.CreatedAt), "in=%v out=%v", in.CreatedAt, out.CreatedAt)
	assert.Equal(t, *in, *out)
}

func TestUserDocument_FieldNames(t *testing.T) {
	doc := toDocument(domain.NewUser(5, "n", "e", time.Unix(0, 0).UTC()))

	raw, err := bson.Marshal(doc)
	assert.NoError(t, err)

	var m bson.M
	assert.NoError(t, bson.Unmarshal(raw, &m))
	for _, key := range []string{"_id", "user_id", "name", "email", "created_at"} {
		assert.Contains(t, m, key)
	}
}
