// Package audible provides a client library for the Audible API.
//
// # Overview
//
// This package implements a small Go client for the Audible customer API,
// focusing on login, credential persistence, and library listing. It provides
// a clean, type-safe API with context support and structured errors.
//
// # Installation
//
//	go get github.com/jfmyers9/audiblex/pkg/audible
//
// # Quick Start
//
// Authenticate once and persist the credential:
//
//	import "github.com/jfmyers9/audiblex/pkg/audible"
//
//	cred, err := audible.Login(ctx, "user@example.com", "hunter2", "us")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cred.ToFile("auth/audible_auth.txt"); err != nil {
//	    log.Fatal(err)
//	}
//
// Later, load the credential and list the library:
//
//	cred, err := audible.CredentialFromFile("auth/audible_auth.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	client, err := audible.NewClient(audible.Config{Credential: cred})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	items, err := client.Library().List(ctx, audible.ListOptions{
//	    NumResults:     1000,
//	    ResponseGroups: []string{"product_desc", "product_attrs", "contributors"},
//	    SortBy:         "Author",
//	})
//
// # Marketplaces
//
// Audible runs one marketplace per country. The locale code passed to Login
// selects the API and auth hosts; see Locales for the supported codes.
//
// # Error Handling
//
// API failures are returned as *Error with the HTTP status and the error code
// and message from the response body:
//
//	items, err := client.Library().List(ctx, opts)
//	if err != nil {
//	    var apiErr *audible.Error
//	    if errors.As(err, &apiErr) && apiErr.AuthFailure() {
//	        // credential is no longer valid, re-run login
//	    }
//	}
//
// # Context Support
//
// All API methods accept a context.Context for cancellation and timeouts.
package audible
