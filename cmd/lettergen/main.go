package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	clientsqlite "github.com/goliatone/go-lettergen/pkg/client/sqlite"
	"github.com/goliatone/go-lettergen/pkg/delivery"
	"github.com/goliatone/go-lettergen/pkg/generator"
	"github.com/goliatone/go-lettergen/pkg/renderers/tui"
	"github.com/goliatone/go-lettergen/pkg/renderers/vanilla"
)

func main() {
	docType := flag.String("type", "CCL", "document type to generate")
	clientID := flag.String("client", "", "client record id to seed from")
	dbPath := flag.String("db", "", "client database path (no record store if empty)")
	webhook := flag.String("webhook", "", "deliver the payload to this webhook URL")
	renderHTML := flag.Bool("html", false, "print the form HTML instead of prompting")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	ctx := context.Background()

	var opts []generator.Option
	if *dbPath != "" {
		store, err := clientsqlite.Open(*dbPath)
		if err != nil {
			log.Fatalf("open client store: %v", err)
		}
		defer store.Close()
		opts = append(opts, generator.WithStore(store))
	}
	if *webhook != "" {
		sink, err := delivery.NewWebhookSink(*webhook)
		if err != nil {
			log.Fatalf("configure webhook: %v", err)
		}
		opts = append(opts, generator.WithSink(sink))
	}
	gen := generator.New(opts...)

	form, err := gen.Form(*docType)
	if err != nil {
		log.Fatalf("build form: %v", err)
	}

	if *renderHTML {
		renderer, err := vanilla.New()
		if err != nil {
			log.Fatalf("configure renderer: %v", err)
		}
		page, err := renderer.Render(ctx, form)
		if err != nil {
			log.Fatalf("render form: %v", err)
		}
		emit(*output, page)
		return
	}

	values, err := tui.New().Run(ctx, form)
	if err != nil {
		if errors.Is(err, tui.ErrAborted) {
			os.Exit(130)
		}
		log.Fatalf("collect form values: %v", err)
	}

	if missing, err := gen.Validate(*docType, values); err == nil && len(missing) > 0 {
		fmt.Fprintf(os.Stderr, "missing required fields: %s\n", strings.Join(missing, ", "))
	}

	req := generator.Request{DocType: *docType, ClientID: *clientID, Values: values}
	var result generator.Result
	if *webhook != "" {
		result, err = gen.Send(ctx, req)
	} else {
		result, err = gen.Generate(ctx, req)
	}
	if err != nil {
		log.Fatalf("generate document: %v", err)
	}

	emit(*output, []byte(result.Prompt))
}

func emit(path string, data []byte) {
	if path != "" {
		if err := os.WriteFile(path, data, 0o644); err != nil {
			log.Fatalf("write output: %v", err)
		}
		fmt.Printf("Output written to %s\n", path)
		return
	}
	fmt.Println(string(data))
}
