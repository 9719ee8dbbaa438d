// Package scriptdex queries a corpus of example bundles stored one directory per example.
//
// Each bundle holds a primary script, optional documentation, optional YAML metadata
// and any number of auxiliary files. The default layout is SAP Cloud Integration
// Groovy examples: script.groovy, README.md and meta.yaml.
//
// Every query re-reads the corpus and returns a complete markdown report:
//
//	client, _ := scriptdex.New(scriptdex.WithRoot("./examples"))
//	listing, _ := client.Listing(ctx, "logging")
//	bundle, _ := client.Render(ctx, "payload-logging")
//	hits, _ := client.Search(ctx, "messageLog")
//	summary, _ := client.Analyze(ctx, "payload-logging")
//	diff, _ := client.Compare(ctx, "payload-logging", "csv-to-xml")
//
// Raw files are exposed as resources:
//
//	resources, _ := client.EnumerateResources(ctx)
//	text, _ := client.ReadResource(ctx, "payload-logging", scriptdex.ResourceScript)
package scriptdex
