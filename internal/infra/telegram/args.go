package telegram

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"birthday_notification_bot/internal/domain/birthday"
)

const maxNextCount = 25

var errUsage = errors.New("usage")

// parseAddArgs reads "<user_id> <name...> <mm> <dd>". The name may span several words.
func parseAddArgs(args []string) (*birthday.Birthday, error) {
	if len(args) < 4 {
		return nil, fmt.Errorf("%w: expected <user_id> <name> <mm> <dd>", errUsage)
	}
	month, err := strconv.Atoi(args[len(args)-2])
	if err != nil {
		return nil, fmt.Errorf("%w: month %q is not a number", errUsage, args[len(args)-2])
	}
	day, err := strconv.Atoi(args[len(args)-1])
	if err != nil {
		return nil, fmt.Errorf("%w: day %q is not a number", errUsage, args[len(args)-1])
	}
	return &birthday.Birthday{
		ExternalID:  args[0],
		DisplayName: strings.Join(args[1:len(args)-2], " "),
		Month:       month,
		Day:         day,
	}, nil
}

func parseDeleteArgs(args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%w: expected <user_id>", errUsage)
	}
	return args[0], nil
}

// parseCount reads the optional /bnext argument. 0 means "use the configured default".
func parseCount(args []string) (int, error) {
	if len(args) == 0 {
		return 0, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > maxNextCount {
		return 0, fmt.Errorf("%w: count must be between 1 and %d", errUsage, maxNextCount)
	}
	return n, nil
}
