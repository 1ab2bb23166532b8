package menu

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditorApplyReturnsAllFields(t *testing.T) {
	fields := []Field{
		{Label: "Game Name", Kind: FieldText},
		{Label: "Price", Kind: FieldNumber},
	}
	// Edit both fields, then apply (choice 4; cancel is 3).
	c, out := newPromptController("1\nDoom\n2\n4.5\n4\n")

	editor := NewEditor("Edit Game: G1", fields, []string{"Zelda", "10.00"})
	applied, values, err := editor.Run(c)
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, []string{"Doom", "4.50"}, values, "apply covers every field, number rendered to two decimals")
	assert.Contains(t, out.String(), "[Zelda => Doom]")
	assert.Contains(t, out.String(), "[10.00 => 4.50]")
}

func TestEditorCancelDiscardsPendingEdits(t *testing.T) {
	fields := []Field{
		{Label: "Game Name", Kind: FieldText},
		{Label: "Genre", Kind: FieldText},
	}
	// Edit one field, then cancel (choice 3).
	c, _ := newPromptController("1\nDoom\n3\n")

	editor := NewEditor("Edit Game: G1", fields, []string{"Zelda", "RPG"})
	applied, values, err := editor.Run(c)
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Nil(t, values)
}

func TestEditorUnchangedFieldRendersPlain(t *testing.T) {
	fields := []Field{{Label: "Genre", Kind: FieldText}}
	c, out := newPromptController("3\n")

	editor := NewEditor("Edit Game: G1", fields, []string{"RPG"})
	applied, _, err := editor.Run(c)
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Contains(t, out.String(), "[RPG]")
	assert.NotContains(t, out.String(), "=>")
}

func TestEditorEnumOutOfRangeKeepsOtherEdits(t *testing.T) {
	fields := []Field{
		{Label: "Status", Kind: FieldEnum, Options: []string{"ready", "shipped", "delivered"}},
		{Label: "Comments", Kind: FieldText},
	}
	// Edit the comment, botch the enum choice, then apply (choice 4).
	c, out := newPromptController("2\nleft at depot\n1\n9\n4\n")

	editor := NewEditor("Update Tracking", fields, []string{"ready", ""})
	applied, values, err := editor.Run(c)
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, []string{"ready", "left at depot"}, values,
		"bad enum choice aborts that field only")
	assert.Contains(t, out.String(), "Choice is not in accepted range; Status unchanged.")
}

func TestEditorEnumChoiceSelectsOption(t *testing.T) {
	fields := []Field{
		{Label: "Status", Kind: FieldEnum, Options: []string{"ready", "shipped", "delivered"}},
	}
	c, out := newPromptController("1\n2\n3\n")

	editor := NewEditor("Update Tracking", fields, []string{"ready"})
	applied, values, err := editor.Run(c)
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, []string{"shipped"}, values)
	assert.Contains(t, out.String(), "1. ready")
	assert.Contains(t, out.String(), "3. delivered")
}

func TestEditorEOFPropagates(t *testing.T) {
	fields := []Field{{Label: "Genre", Kind: FieldText}}
	c, _ := newPromptController("1\n")

	editor := NewEditor("Edit Game: G1", fields, []string{"RPG"})
	_, _, err := editor.Run(c)
	assert.ErrorIs(t, err, io.EOF)
}
