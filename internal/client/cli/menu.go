package cli

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/dmitrijs2005/easypost-cli/internal/common"
	"github.com/dmitrijs2005/easypost-cli/internal/logging"
)

// Command is a main menu choice.
type Command int

const (
	CmdInvalid Command = iota
	CmdListShipments
	CmdNewShipment
	CmdListAddresses
	CmdListParcels
	CmdQuit
)

var commandNames = map[Command]string{
	CmdInvalid:       "invalid",
	CmdListShipments: "list-shipments",
	CmdNewShipment:   "new-shipment",
	CmdListAddresses: "list-addresses",
	CmdListParcels:   "list-parcels",
	CmdQuit:          "quit",
}

func (c Command) String() string {
	return commandNames[c]
}

// ParseCommand maps a trimmed, case-insensitive single letter to a Command.
func ParseCommand(s string) Command {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "S":
		return CmdListShipments
	case "N":
		return CmdNewShipment
	case "A":
		return CmdListAddresses
	case "P":
		return CmdListParcels
	case "Q":
		return CmdQuit
	default:
		return CmdInvalid
	}
}

const mainMenu = "[S] Shipments    [N] New Shipment\n[A] Addresses    [P] Parcels    [Q] Quit"

// execIface is the handler surface the menu dispatches to. App satisfies it;
// tests use a recording stub.
type execIface interface {
	ListShipments(ctx context.Context) error
	NewShipment(ctx context.Context) error
	ListAddresses(ctx context.Context) error
	ListParcels(ctx context.Context) error
}

// runMenu shows the main menu, reads a choice and dispatches it until Quit
// or end of input. Handler errors are logged and shown, then the menu is
// displayed again.
func runMenu(ctx context.Context, a execIface, c *Console, mode string, logger logging.Logger) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.p.Line(mode, "Main Menu", mainMenu)
		in, err := c.ReadLine(prompt)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		cmd := ParseCommand(in)
		switch cmd {
		case CmdListShipments:
			err = a.ListShipments(ctx)
		case CmdNewShipment:
			err = a.NewShipment(ctx)
		case CmdListAddresses:
			err = a.ListAddresses(ctx)
		case CmdListParcels:
			err = a.ListParcels(ctx)
		case CmdQuit:
			return nil
		default:
			c.p.Error("Invalid section")
			continue
		}

		switch {
		case err == nil, errors.Is(err, common.ErrAborted):
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, context.Canceled):
			return err
		default:
			logger.Warn(ctx, "command failed", "command", cmd.String(), "err", err)
			c.p.Error("Error: " + err.Error())
		}
	}
}
