package mongostore

import (
	"errors"
	"fmt"
	"testing"

	"github.com/muhammadheryan/verified-commerce/repository"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func TestWrapError(t *testing.T) {
	other := errors.New("socket closed")
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "nil", err: nil, want: nil},
		{name: "no documents", err: fmt.Errorf("find: %w", mongo.ErrNoDocuments), want: repository.ErrNotFound},
		{name: "duplicate key", err: mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}, want: repository.ErrDuplicate},
		{name: "passthrough", err: other, want: other},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := WrapError(tt.err); !errors.Is(got, tt.want) && got != tt.want {
				t.Fatalf("WrapError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContainsFold(t *testing.T) {
	got := ContainsFold("name", "a.b+")
	want := bson.E{Key: "name", Value: bson.D{
		{Key: "$regex", Value: `a\.b\+`},
		{Key: "$options", Value: "i"},
	}}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Fatalf("ContainsFold() = %v, want %v", got, want)
	}
}

func TestIn_NilBecomesEmptySet(t *testing.T) {
	got := In("_id", nil)
	inner := got.Value.(bson.D)
	if vals, ok := inner[0].Value.([]string); !ok || vals == nil || len(vals) != 0 {
		t.Fatalf("In() = %v, want empty non-nil set", got)
	}
}

func TestNewID(t *testing.T) {
	id := NewID()
	if _, err := bson.ObjectIDFromHex(id); err != nil {
		t.Fatalf("NewID() = %q is not an ObjectID hex: %v", id, err)
	}
	if NewID() == id {
		t.Fatal("NewID() returned the same id twice")
	}
}
