// Package cli implements the interactive EasyPost menu: the main menu loop,
// the shipment/address/parcel command handlers and the line-oriented input
// helpers they share.
//
// Usage
//
//	console := cli.NewConsole(os.Stdin, printer)
//	sess, err := session.Bootstrap(ctx, hint, console, store, os.Stdout)
//	app := cli.NewApp(sess, console, cli.Deps{Client: api, Logger: logger})
//	err = app.Run(ctx)
//
// Run returns nil when the user quits or input ends.
package cli
