package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/crmforge-dev/crmforge/pkg/schema"
	"github.com/crmforge-dev/crmforge/pkg/sdk"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		return
	}

	client := sdk.New(sdk.DefaultAddr())

	command := strings.ToUpper(os.Args[1])
	args := os.Args[2:]

	switch command {
	case "LIST":
		q, err := parseListQuery(args)
		if err != nil {
			log.Fatal(err)
		}
		customers, total, err := client.List(q)
		if err != nil {
			log.Fatal(err)
		}
		printJSON(customers)
		fmt.Fprintf(os.Stderr, "total: %d\n", total)

	case "GET":
		id := parseID(args, "Usage: crmforge GET <id>")
		customer, err := client.Get(id)
		if err != nil {
			log.Fatal(err)
		}
		printJSON(customer)

	case "CREATE":
		if len(args) < 1 {
			log.Fatal("Usage: crmforge CREATE <customer-json>")
		}
		in := parseInput(args[0])
		customer, err := client.Create(in)
		if err != nil {
			log.Fatal(err)
		}
		printJSON(customer)

	case "UPDATE":
		if len(args) < 2 {
			log.Fatal("Usage: crmforge UPDATE <id> <customer-json>")
		}
		id := parseID(args, "Usage: crmforge UPDATE <id> <customer-json>")
		in := parseInput(args[1])
		customer, err := client.Update(id, in)
		if err != nil {
			log.Fatal(err)
		}
		printJSON(customer)

	case "DELETE":
		id := parseID(args, "Usage: crmforge DELETE <id>")
		if err := client.Delete(id); err != nil {
			log.Fatal(err)
		}
		fmt.Println("OK")

	case "EXPORT":
		q, err := parseListQuery(args)
		if err != nil {
			log.Fatal(err)
		}
		csv, err := client.ExportCSV(q)
		if err != nil {
			log.Fatal(err)
		}
		os.Stdout.Write(csv)

	case "TAGS":
		tags, err := client.Tags()
		if err != nil {
			log.Fatal(err)
		}
		printJSON(tags)

	case "PING":
		if err := client.Ping(); err != nil {
			log.Fatal(err)
		}
		fmt.Println("PONG")

	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
	}
}

// parseListQuery reads key=value pairs, e.g. `status=active page=2 sort=revenue`.
func parseListQuery(args []string) (sdk.ListQuery, error) {
	var q sdk.ListQuery
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found {
			return q, fmt.Errorf("expected key=value, got %q", arg)
		}
		switch key {
		case "q", "search":
			q.Search = value
		case "status":
			q.Status = value
		case "company":
			q.Company = value
		case "date_start":
			q.DateStart = value
		case "date_end":
			q.DateEnd = value
		case "revenue_min":
			q.RevenueMin = value
		case "revenue_max":
			q.RevenueMax = value
		case "tags":
			q.Tags = strings.Split(value, ",")
		case "sort":
			q.SortField = value
		case "order":
			q.SortOrder = value
		case "page":
			n, err := strconv.Atoi(value)
			if err != nil {
				return q, fmt.Errorf("page: %w", err)
			}
			q.Page = n
		case "limit":
			n, err := strconv.Atoi(value)
			if err != nil {
				return q, fmt.Errorf("limit: %w", err)
			}
			q.Limit = n
		default:
			return q, fmt.Errorf("unknown filter %q", key)
		}
	}
	return q, nil
}

func parseID(args []string, usage string) int {
	if len(args) < 1 {
		log.Fatal(usage)
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		log.Fatalf("invalid id %q", args[0])
	}
	return id
}

// parseInput decodes and validates the customer payload locally, so obvious
// mistakes fail before a round trip.
func parseInput(raw string) schema.CustomerInput {
	var in schema.CustomerInput
	if err := json.Unmarshal([]byte(raw), &in); err != nil {
		log.Fatalf("invalid customer json: %v", err)
	}
	if err := in.Validate(); err != nil {
		log.Fatalf("invalid customer: %v", err)
	}
	return in
}

func printUsage() {
	fmt.Println("crmforge - CLI for the crmforge customer API")
	fmt.Println("\nUsage:")
	fmt.Println("  crmforge LIST [q=term] [status=active|inactive|pending] [company=name]")
	fmt.Println("                [date_start=YYYY-MM-DD date_end=YYYY-MM-DD]")
	fmt.Println("                [revenue_min=N] [revenue_max=N] [tags=a,b]")
	fmt.Println("                [sort=field] [order=asc|desc] [page=N] [limit=N]")
	fmt.Println("  crmforge GET <id>")
	fmt.Println("  crmforge CREATE <customer-json>")
	fmt.Println("  crmforge UPDATE <id> <customer-json>")
	fmt.Println("  crmforge DELETE <id>")
	fmt.Println("  crmforge EXPORT [same filters as LIST]")
	fmt.Println("  crmforge TAGS")
	fmt.Println("  crmforge PING")
	fmt.Println("\nEnvironment Variables:")
	fmt.Println("  CRM_ADDR    Base URL of the daemon (default: http://localhost:7002)")
}

func printJSON(v any) {
	bytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Println(v)
		return
	}
	fmt.Println(string(bytes))
}
