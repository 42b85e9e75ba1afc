package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	cli "github.com/urfave/cli/v2"

	"github.com/urikit/urikit/uri"
)

func main() {
	app := &cli.App{
		Name:      "urinorm",
		Usage:     "parse and canonicalize RFC 3986 URIs",
		ArgsUsage: "[uri ...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "dump",
				Usage: "print decomposed components instead of the canonical form",
			},
			&cli.BoolFlag{
				Name:  "check",
				Usage: "compare exactly two URIs for canonical equality",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(cctx *cli.Context) error {
	inputs := cctx.Args().Slice()
	if len(inputs) == 0 {
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line != "" {
				inputs = append(inputs, line)
			}
		}
		if err := sc.Err(); err != nil {
			return err
		}
	}

	if cctx.Bool("check") {
		if len(inputs) != 2 {
			return fmt.Errorf("check needs exactly two URIs, got %d", len(inputs))
		}
		a, err := uri.Parse(inputs[0])
		if err != nil {
			return fmt.Errorf("%q: %v", inputs[0], err)
		}
		b, err := uri.Parse(inputs[1])
		if err != nil {
			return fmt.Errorf("%q: %v", inputs[1], err)
		}
		if !uri.Equal(a, b) {
			return cli.Exit(fmt.Sprintf("not equal:\n  %s\n  %s", a, b), 1)
		}
		fmt.Println(a)
		return nil
	}

	for _, raw := range inputs {
		u, err := uri.Parse(raw)
		if err != nil {
			return fmt.Errorf("%q: %v", raw, err)
		}
		if cctx.Bool("dump") {
			dump(u)
		} else {
			fmt.Println(u)
		}
	}
	return nil
}

func dump(u *uri.Uri) {
	fmt.Printf("uri       %s\n", u)
	fmt.Printf("scheme    %s\n", u.Scheme())
	if u.HasAuthority() {
		fmt.Printf("authority %s\n", u.Authority())
		if u.HasUserInformation() {
			fmt.Printf("userinfo  %s\n", u.UserInformation())
		}
		fmt.Printf("host      %s\n", u.Host())
		if u.HasPort() {
			fmt.Printf("port      %d\n", u.Port())
		}
	}
	for i, seg := range u.Path() {
		fmt.Printf("path[%d]   %q\n", i, seg)
	}
	if u.HasQuery() {
		fmt.Printf("query     %s\n", u.QueryString())
		for _, p := range u.Query() {
			if p.HasValue {
				fmt.Printf("  %s = %s\n", p.Key, p.Value)
			} else {
				fmt.Printf("  %s (no value)\n", p.Key)
			}
		}
	}
	if u.HasFragment() {
		fmt.Printf("fragment  %s\n", u.Fragment())
	}
	fmt.Println()
}
