package profile

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	model "github.com/dvhelper/backend/internal/model/profile"
)

func ptr[T any](v T) *T { return &v }

func TestExtract(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		current model.Profile
		want    model.Update
	}{
		{
			name: "no keywords",
			text: "Hello there, how are you today?",
			want: model.Update{},
		},
		{
			name: "full introduction",
			text: "I am Priya from Mumbai, my husband hits me",
			want: model.Update{
				Name:      ptr("Priya"),
				Location:  ptr("Mumbai"),
				Situation: ptr(model.SituationMarital),
			},
		},
		{
			name: "location is case insensitive",
			text: "Now living in CHENNAI!!",
			want: model.Update{Location: ptr("Chennai")},
		},
		{
			name: "earlier vocabulary entry shadows longer name",
			text: "we moved to navi mumbai",
			want: model.Update{Location: ptr("Mumbai")},
		},
		{
			name: "name keeps original case",
			text: "my name is ANJALI",
			want: model.Update{Name: ptr("ANJALI")},
		},
		{
			name: "name pattern priority",
			text: "My name is Kavya and I am tired",
			want: model.Update{Name: ptr("Kavya")},
		},
		{
			name: "call me",
			text: "Call me Ria. I'm scared",
			want: model.Update{Name: ptr("Ria")},
		},
		{
			name: "family outranks dowry",
			text: "my in-laws keep asking for dowry",
			want: model.Update{Situation: ptr(model.SituationFamily)},
		},
		{
			name: "dowry alone",
			text: "they want more dowry",
			want: model.Update{Situation: ptr(model.SituationDowry)},
		},
		{
			name: "boyfriend",
			text: "my boyfriend threatens me",
			want: model.Update{Situation: ptr(model.SituationIntimatePartner)},
		},
		{
			name:    "unchanged field is not reported",
			text:    "still in pune",
			current: model.Profile{Location: "Pune"},
			want:    model.Update{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text, tt.current)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Extract(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestExtractGenderLastMatchWins(t *testing.T) {
	current := model.Profile{Gender: model.GenderMale}

	update := Extract("I am female and scared", current)

	if assert.NotNil(t, update.Gender) {
		assert.Equal(t, model.GenderFemale, *update.Gender)
	}
	assert.Equal(t, model.GenderFemale, current.Apply(update).Gender)
}

func TestExtractGenderMale(t *testing.T) {
	update := Extract("I am a man and my wife hits me", model.Profile{})

	if assert.NotNil(t, update.Gender) {
		assert.Equal(t, model.GenderMale, *update.Gender)
	}
	if assert.NotNil(t, update.Situation) {
		assert.Equal(t, model.SituationMarital, *update.Situation)
	}
}

func TestExtractLeavesProfileUnchangedWithoutKeywords(t *testing.T) {
	current := model.Profile{Name: "Meera", Location: "Delhi", Gender: model.GenderFemale}
	for _, text := range []string{"", "ok", "what should I do next?", "thank you so much"} {
		update := Extract(text, current)
		assert.True(t, update.Empty(), "text %q", text)
		assert.Equal(t, current, current.Apply(update))
	}
}

func TestExtractEveryLocationCapitalised(t *testing.T) {
	for _, place := range Locations {
		update := Extract("I live near "+place+" these days", model.Profile{})
		if assert.NotNil(t, update.Location, place) {
			loc := *update.Location
			assert.True(t, loc[0] >= 'A' && loc[0] <= 'Z', "%s -> %s", place, loc)
		}
	}
}
