package menu

import (
	"fmt"
	"strconv"
)

// FieldKind selects the input style of an editable field.
type FieldKind int

const (
	// FieldText reads free text.
	FieldText FieldKind = iota
	// FieldNumber reads a non-negative number.
	FieldNumber
	// FieldEnum presents a numbered submenu of the allowed values.
	FieldEnum
)

// Field describes one editable field in a record editor.
type Field struct {
	Label   string
	Kind    FieldKind
	Options []string // Allowed values for FieldEnum.
}

// Editor is the generic field-edit loop reused for catalog entries,
// user accounts, and tracking records. It holds the current values and
// a pending copy; edits touch only the pending copy until Apply, and
// Cancel discards everything.
type Editor struct {
	title   string
	fields  []Field
	current []string
	pending []string
}

// NewEditor creates an editor seeded with the record's current values.
// len(current) must equal len(fields).
func NewEditor(title string, fields []Field, current []string) *Editor {
	pending := make([]string, len(current))
	copy(pending, current)
	cur := make([]string, len(current))
	copy(cur, current)
	return &Editor{title: title, fields: fields, current: cur, pending: pending}
}

// changeString renders a field value for the menu: "[cur]" when
// unchanged, "[cur => new]" when a pending edit exists.
func changeString(cur, pending string) string {
	if cur == pending {
		return fmt.Sprintf("[%s]", cur)
	}
	return fmt.Sprintf("[%s => %s]", cur, pending)
}

// Run drives the edit loop. It returns (true, values, nil) when the user
// applies the pending edits; values covers every field, changed or not,
// so the caller issues exactly one update statement. It returns
// (false, nil, nil) on cancel. Only input-stream errors are returned.
func (e *Editor) Run(c *Controller) (bool, []string, error) {
	cancelChoice := len(e.fields) + 1
	applyChoice := len(e.fields) + 2

	for {
		c.printf("\n%s\n", e.title)
		c.printf("Choose Field to Edit\n")
		for i, f := range e.fields {
			c.printf("%d. %-15s %s\n", i+1, f.Label, changeString(e.current[i], e.pending[i]))
		}
		c.printf("%d. Cancel\n", cancelChoice)
		c.printf("%d. Apply Edits\n", applyChoice)

		choice, err := c.readChoice()
		if err != nil {
			return false, nil, err
		}

		switch {
		case choice >= 1 && choice <= len(e.fields):
			if err := e.editField(c, choice-1); err != nil {
				return false, nil, err
			}
		case choice == cancelChoice:
			return false, nil, nil
		case choice == applyChoice:
			return true, e.pending, nil
		default:
			c.printf("Invalid choice!\n")
		}
	}
}

// editField updates the pending value of one field. An out-of-range enum
// choice aborts this one field edit; other pending edits are kept.
func (e *Editor) editField(c *Controller, idx int) error {
	f := e.fields[idx]
	switch f.Kind {
	case FieldNumber:
		v, err := c.readPrice(fmt.Sprintf("Enter new value for %s: ", f.Label))
		if err != nil {
			return err
		}
		e.pending[idx] = strconv.FormatFloat(v, 'f', 2, 64)
	case FieldEnum:
		for i, opt := range f.Options {
			c.printf("%d. %s\n", i+1, opt)
		}
		choice, err := c.readChoice()
		if err != nil {
			return err
		}
		if choice < 1 || choice > len(f.Options) {
			c.printf("Choice is not in accepted range; %s unchanged.\n", f.Label)
			return nil
		}
		e.pending[idx] = f.Options[choice-1]
	default:
		v, err := c.readString(fmt.Sprintf("Enter new value for %s: ", f.Label))
		if err != nil {
			return err
		}
		e.pending[idx] = v
	}
	return nil
}
