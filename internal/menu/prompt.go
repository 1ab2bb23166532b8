package menu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// readLine reads one line of input. Returns io.EOF when the input stream
// ends; that is the only error that leaves a prompt loop.
func (c *Controller) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// printf writes to the session terminal.
func (c *Controller) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// readChoice prompts for a numbered menu choice until the input parses
// as an integer. Unparsable input is reported and re-prompted; it never
// escalates past the current menu.
func (c *Controller) readChoice() (int, error) {
	for {
		c.printf("Please make your choice: ")
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			c.printf("Your input is invalid!\n")
			continue
		}
		return n, nil
	}
}

// readString prompts until a non-empty line is entered.
func (c *Controller) readString(prompt string) (string, error) {
	for {
		c.printf("%s", prompt)
		line, err := c.readLine()
		if err != nil {
			return "", err
		}
		if line == "" {
			c.printf("Input must not be empty!\n")
			continue
		}
		return line, nil
	}
}

// readOptionalString prompts once; an empty line is a valid answer.
func (c *Controller) readOptionalString(prompt string) (string, error) {
	c.printf("%s", prompt)
	return c.readLine()
}

// readPositiveInt prompts until a positive integer is entered.
func (c *Controller) readPositiveInt(prompt string) (int, error) {
	for {
		c.printf("%s", prompt)
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(line)
		if convErr != nil || n <= 0 {
			c.printf("Please enter a positive whole number.\n")
			continue
		}
		return n, nil
	}
}

// readPrice prompts until a non-negative number is entered.
func (c *Controller) readPrice(prompt string) (float64, error) {
	for {
		c.printf("%s", prompt)
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}
		v, convErr := strconv.ParseFloat(line, 64)
		if convErr != nil || v < 0 {
			c.printf("Please enter a non-negative number.\n")
			continue
		}
		return v, nil
	}
}

// pressEnter pauses until the user continues. End of input is fine
// here; the caller's next read will see it.
func (c *Controller) pressEnter() {
	c.printf("Press Enter to continue...")
	_, _ = c.readLine()
	c.printf("\n")
}

// newScanner builds the line scanner used by the controller.
func newScanner(r io.Reader) *bufio.Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 4096), 1<<20)
	return s
}
