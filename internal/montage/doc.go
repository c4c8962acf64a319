// Package montage loads sensor montages: named, ordered lists of 3D sensor
// positions read from EEG/MEG layout files.
//
// ReadMontage picks a parser from the filename suffix of kind (see package
// layout), resolves the file, optionally restricts the result to a set of
// sensor names and returns an immutable Montage.
//
// Files are resolved in this order:
//   - kind itself, when it names an existing file
//   - inside the directory given by WithPath, when set
//   - the reference layouts bundled with the package (see Builtin)
//
// Example:
//
//	m, err := montage.ReadMontage("standard-1020.elc", montage.WithNames("Fp1", "Cz", "Oz"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(m) // <Montage | standard-1020.elc - Channels: Fp1, Cz, Oz ...>
package montage
