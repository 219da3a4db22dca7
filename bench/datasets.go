package bench

import (
	"fmt"
	"math"

	"github.com/signadot/tony-format/go-toon/gomap"
	"github.com/signadot/tony-format/go-toon/ir"
)

type User struct {
	ID     int    `toon:"id"`
	Name   string `toon:"name"`
	Email  string `toon:"email"`
	Role   string `toon:"role"`
	Active bool   `toon:"active"`
}

type Product struct {
	SKU      string  `toon:"sku"`
	Name     string  `toon:"name"`
	Price    float64 `toon:"price"`
	Category string  `toon:"category"`
	InStock  bool    `toon:"in_stock"`
}

// Users returns n uniform user records.
func Users(n int) *ir.Node {
	roles := []string{"admin", "user", "viewer", "editor"}
	res := make([]User, n)
	for i := range n {
		res[i] = User{
			ID:     i + 1,
			Name:   fmt.Sprintf("User%d", i+1),
			Email:  fmt.Sprintf("user%d@example.com", i+1),
			Role:   roles[i%len(roles)],
			Active: i%3 != 0,
		}
	}
	return mustIR(res)
}

// Products returns n uniform product records.
func Products(n int) *ir.Node {
	categories := []string{"electronics", "clothing", "food", "tools"}
	res := make([]Product, n)
	for i := range n {
		res[i] = Product{
			SKU:      fmt.Sprintf("SKU-%d", 1000+i),
			Name:     fmt.Sprintf("Product %d", i+1),
			Price:    math.Round((9.99+float64(i)*5.5)*100) / 100,
			Category: categories[i%len(categories)],
			InStock:  i%5 != 0,
		}
	}
	return mustIR(res)
}

func mustIR(v any) *ir.Node {
	node, err := gomap.ToIR(v)
	if err != nil {
		panic(err)
	}
	return node
}

// Config returns a small nested configuration document.
func Config() *ir.Node {
	str := ir.FromString
	strs := func(vs ...string) *ir.Node {
		res := make([]*ir.Node, len(vs))
		for i, v := range vs {
			res[i] = str(v)
		}
		return ir.FromSlice(res)
	}
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: "app", Val: ir.FromKeyVals([]ir.KeyVal{
			{Key: "name", Val: str("MyApp")},
			{Key: "version", Val: str("2.1.0")},
			{Key: "debug", Val: ir.FromBool(false)},
		})},
		{Key: "database", Val: ir.FromKeyVals([]ir.KeyVal{
			{Key: "host", Val: str("db.example.com")},
			{Key: "port", Val: ir.FromInt(5432)},
			{Key: "credentials", Val: ir.FromKeyVals([]ir.KeyVal{
				{Key: "user", Val: str("admin")},
				{Key: "password", Val: str("secret123")},
			})},
			{Key: "pool", Val: ir.FromKeyVals([]ir.KeyVal{
				{Key: "min", Val: ir.FromInt(5)},
				{Key: "max", Val: ir.FromInt(20)},
				{Key: "idle_timeout", Val: ir.FromInt(300)},
			})},
		})},
		{Key: "features", Val: strs("auth", "logging", "metrics", "caching")},
		{Key: "regions", Val: strs("us-east-1", "eu-west-1", "ap-south-1")},
	})
}

// Datasets returns the built in datasets by name.
func Datasets() map[string]*ir.Node {
	return map[string]*ir.Node{
		"users":    Users(100),
		"products": Products(100),
		"config":   Config(),
	}
}
