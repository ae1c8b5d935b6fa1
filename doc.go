// Package qqwry reads the QQWry (纯真) IPv4 geolocation database format.
//
// A QQWry .dat file maps IPv4 ranges to a country and an area string,
// both stored as GBK text. The package performs positioned reads against
// the file on every lookup; nothing is cached and the whole file is never
// loaded into memory.
//
// Basic usage:
//
//	db, err := qqwry.Open("qqwry.dat")
//	if err != nil {
//	    log.Fatalf("open database: %v", err)
//	}
//	defer db.Close()
//
//	rec, err := db.FindString("8.8.8.8")
//	if err != nil {
//	    log.Printf("lookup failed: %v", err)
//	} else {
//	    fmt.Println(rec.Country, rec.Area)
//	}
//
// A DB shares one file cursor between Find and the iterator and is not
// safe for concurrent use without external locking.
package qqwry
