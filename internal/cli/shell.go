package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hemshop/storefront/internal/catalog"
	"github.com/hemshop/storefront/internal/shop"
)

// NewShellCommand creates the interactive storefront shell. Cart, wishlist,
// and the admin session are process-local, so anything involving them needs
// one long-lived session rather than one-shot commands.
func NewShellCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive storefront session",
		Long: `Start an interactive session: browse the catalog, fill a cart, keep a
wishlist, and manage products as admin. Type "help" inside the shell for the
command list.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sh := &shell{
				in:     bufio.NewReader(cmd.InOrStdin()),
				out:    cmd.OutOrStdout(),
				format: rootOpts.Format,
			}
			s, err := openShop(rootOpts, sh.confirm)
			if err != nil {
				return err
			}
			defer s.Close()
			sh.shop = s
			return sh.run()
		},
	}
}

type shell struct {
	shop   *shop.Shop
	in     *bufio.Reader
	out    io.Writer
	format string
}

func (sh *shell) run() error {
	fmt.Fprintln(sh.out, `HEM storefront. Type "help" for commands, "exit" to leave.`)
	for {
		fmt.Fprint(sh.out, "> ")
		line, err := sh.in.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(sh.out)
				return nil
			}
			return err
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "exit" || fields[0] == "quit" {
			return nil
		}
		if err := sh.dispatch(fields[0], fields[1:]); err != nil {
			fmt.Fprintf(sh.out, "error: %v\n", err)
		}
	}
}

func (sh *shell) dispatch(cmd string, args []string) error {
	switch cmd {
	case "help":
		sh.help()
		return nil
	case "list":
		return writeProducts(sh.out, sh.format, sh.shop.Catalog().Products())
	case "filter":
		return sh.filter(args)
	case "show":
		return sh.show(args)
	case "add":
		return sh.add(args)
	case "cart":
		return sh.cart()
	case "rm":
		return sh.removeLine(args)
	case "qty":
		return sh.adjust(args)
	case "checkout":
		sh.shop.Cart().Checkout()
		fmt.Fprintln(sh.out, "Thank you for your order! HEM is processing your gear.")
		return nil
	case "wish":
		return sh.wish(args)
	case "wishlist":
		return writeProducts(sh.out, sh.format, sh.shop.Wishlist().Items())
	case "login":
		return sh.login(args)
	case "logout":
		sh.shop.Gate().Logout()
		fmt.Fprintln(sh.out, "logged out")
		return nil
	case "delete":
		return sh.deleteProduct(args)
	case "log":
		return writeEntries(sh.out, sh.format, sh.shop.ActivityLog().Entries())
	case "blog":
		return sh.blog(args)
	default:
		return fmt.Errorf("unknown command %q (try help)", cmd)
	}
}

func (sh *shell) help() {
	fmt.Fprint(sh.out, `commands:
  list                              show the catalog
  filter <cat|-> <max|-> [search]   filter the catalog
  show <id>                         product details and related items
  add <id> [size] [color]           add a product to the cart
  cart                              show the cart
  rm <line#>                        remove a cart line
  qty <line#> <delta>               adjust a line quantity
  checkout                          place the order and clear the cart
  wish <id>                         toggle a product on the wishlist
  wishlist                          show the wishlist
  login <password> / logout         admin session
  delete <id>                       delete a product (admin)
  log                               admin activity log
  blog [id]                         blog posts
  exit
`)
}

func (sh *shell) filter(args []string) error {
	category := ""
	maxPrice := math.Inf(1)
	query := ""
	if len(args) > 0 && args[0] != "-" {
		category = args[0]
	}
	if len(args) > 1 && args[1] != "-" {
		v, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid max price %q", args[1])
		}
		maxPrice = v
	}
	if len(args) > 2 {
		query = strings.Join(args[2:], " ")
	}
	return writeProducts(sh.out, sh.format, sh.shop.Catalog().Filter(category, maxPrice, query))
}

func (sh *shell) show(args []string) error {
	id, err := sh.id(args)
	if err != nil {
		return err
	}
	p, ok := sh.shop.Catalog().Get(id)
	if !ok {
		return fmt.Errorf("no product with id %d", id)
	}
	fmt.Fprintf(sh.out, "%s  $%.0f  (%s, %s)\nsizes: %s  colors: %s  stock: %d\n",
		p.Name, p.Price, p.Category, p.Material,
		strings.Join(p.Sizes, ", "), strings.Join(p.Colors, ", "), p.Stock)
	related := sh.shop.Catalog().Related(id, 3)
	if len(related) > 0 {
		fmt.Fprintln(sh.out, "related:")
		for _, r := range related {
			fmt.Fprintf(sh.out, "  [%d] %s  $%.0f\n", r.ID, r.Name, r.Price)
		}
	}
	return nil
}

func (sh *shell) add(args []string) error {
	id, err := sh.id(args)
	if err != nil {
		return err
	}
	p, ok := sh.shop.Catalog().Get(id)
	if !ok {
		return fmt.Errorf("no product with id %d", id)
	}
	size := ""
	if len(p.Sizes) > 0 {
		size = p.Sizes[0]
	}
	if len(args) > 1 {
		size = args[1]
	}
	color := ""
	if len(args) > 2 {
		color = args[2]
	}
	sh.shop.Cart().Add(p, size, color)
	fmt.Fprintln(sh.out, "ADDED TO CART")
	return nil
}

func (sh *shell) cart() error {
	c := sh.shop.Cart()
	if err := writeLines(sh.out, sh.format, c.Lines()); err != nil {
		return err
	}
	if sh.format == "text" {
		fmt.Fprintf(sh.out, "items: %d  total: $%.0f\n", c.Count(), c.Total())
	}
	return nil
}

func (sh *shell) removeLine(args []string) error {
	i, err := sh.id(args)
	if err != nil {
		return err
	}
	sh.shop.Cart().Remove(i)
	return nil
}

func (sh *shell) adjust(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: qty <line#> <delta>")
	}
	i, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid line %q", args[0])
	}
	delta, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid delta %q", args[1])
	}
	sh.shop.Cart().Adjust(i, delta)
	return nil
}

func (sh *shell) wish(args []string) error {
	id, err := sh.id(args)
	if err != nil {
		return err
	}
	p, ok := sh.shop.Catalog().Get(id)
	if !ok {
		return fmt.Errorf("no product with id %d", id)
	}
	sh.shop.Wishlist().Toggle(p)
	if sh.shop.Wishlist().Contains(id) {
		fmt.Fprintln(sh.out, "added to wishlist")
	} else {
		fmt.Fprintln(sh.out, "removed from wishlist")
	}
	return nil
}

func (sh *shell) login(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: login <password>")
	}
	if err := sh.shop.Gate().Login(args[0]); err != nil {
		return err
	}
	fmt.Fprintln(sh.out, "admin session active")
	return nil
}

func (sh *shell) deleteProduct(args []string) error {
	id, err := sh.id(args)
	if err != nil {
		return err
	}
	if err := sh.shop.Catalog().Delete(id); err != nil {
		if errors.Is(err, catalog.ErrCancelled) {
			fmt.Fprintln(sh.out, "cancelled")
			return nil
		}
		return err
	}
	fmt.Fprintf(sh.out, "deleted product %d\n", id)
	return nil
}

func (sh *shell) blog(args []string) error {
	if len(args) == 0 {
		return writePosts(sh.out, sh.format, sh.shop.Blog().Posts())
	}
	id, err := sh.id(args)
	if err != nil {
		return err
	}
	post, ok := sh.shop.Blog().Get(id)
	if !ok {
		return fmt.Errorf("no blog post with id %d", id)
	}
	fmt.Fprintf(sh.out, "%s (%s, %s)\n\n%s\n", post.Title, post.Category, post.Date, post.Content)
	return nil
}

// confirm is the ConfirmFunc wired into the catalog: it asks on the shell's
// own streams so a write pauses for an explicit y/N.
func (sh *shell) confirm(intent string) bool {
	fmt.Fprint(sh.out, "Are you sure you want to "+intent+"? [y/N] ")
	line, err := sh.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func (sh *shell) id(args []string) (int, error) {
	if len(args) < 1 {
		return 0, fmt.Errorf("missing id")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return id, nil
}
