// Package docgen renders invoice and proposal documents to PDF and publishes
// them to object storage.
//
// # Quick Start
//
// Create a publisher, a service, and generate a document:
//
//	pub, err := docgen.NewObjectPublisher(docgen.PublisherConfig{
//	    Endpoint:   "storage.example.com",
//	    AccessKey:  os.Getenv("STORAGE_ACCESS_KEY"),
//	    SecretKey:  os.Getenv("STORAGE_SECRET_KEY"),
//	    Bucket:     "documents",
//	    PublicBase: "https://cdn.example.com",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	svc, err := docgen.New(pub)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer svc.Close()
//
//	res, err := svc.Generate(ctx, &docgen.InvoiceRequest{
//	    ClientName:    "Acme",
//	    ClientAddress: "1 Main St",
//	    Items:         []docgen.InvoiceItem{{Name: "Widget", Price: "10.00"}},
//	    Subtotal:      "10.00",
//	    Tax:           "1.00",
//	    Total:         "11.00",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.URL) // {publicBase}/invoices/{uuid}.pdf
//
// # Generation Pipeline
//
// Each request runs a fixed four-stage pipeline:
//
//  1. Compose: templates plus the shared stylesheet become one HTML document
//  2. Stage: the HTML is written under a fresh uuid in the working directory
//  3. Rasterize: headless Chrome (go-rod) renders the local file to A4 PDF
//  4. Publish: the PDF is uploaded under {type}/{uuid}.pdf and its public
//     URL returned
//
// Any stage failure aborts the remainder of the run; nothing is published
// for a failed render, and artifacts are kept on disk for inspection.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc, err := docgen.New(pub,
//	    docgen.WithTimeout(2 * time.Minute),
//	    docgen.WithWorkDir("/var/lib/docgen"),
//	    docgen.WithClock(func() time.Time { return fixed }),
//	)
//
// # Parallel Processing
//
// For concurrent requests, use ServicePool to bound browser instances:
//
//	pool := docgen.NewServicePool(4, pub)
//	defer pool.Close()
//
//	svc, err := pool.Acquire()
//	if err != nil {
//	    return err
//	}
//	defer pool.Release(svc)
//	res, err := svc.Generate(ctx, req)
//
// # Custom Templates
//
// Built-in templates and the base stylesheet are embedded. Override them with
// WithAssetPath pointing at a directory containing:
//
//	assets/
//	├── styles/
//	│   └── base.css
//	└── templates/
//	    ├── invoice/
//	    │   └── invoice.html
//	    └── proposal/
//	        ├── page1_cover.html
//	        ├── page2_about.html
//	        ├── page3_solution.html
//	        └── page4_pricing.html
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
//
// For containers and CI environments, set ROD_NO_SANDBOX=1 to disable the
// Chrome sandbox. Use ROD_BROWSER_BIN to specify a custom Chrome binary.
package docgen
