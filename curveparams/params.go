// Copyright (c) 2024 The tinyecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package curveparams

import "strconv"

// CurveID names one of the Certicom ECCp challenge curves shipped with
// this package, by its field bit width.
type CurveID int

// The Certicom ECCp challenge curves, at the bit widths the challenge
// was published for.
const (
	ECCp79 CurveID = iota
	ECCp89
	ECCp97
	ECCp109
	ECCp131
	ECCp163
	ECCp191
	ECCp239
	ECCp359
)

// String returns the curve's conventional name, e.g. "ECCp-79".
func (id CurveID) String() string {
	if p, ok := registry[id]; ok {
		return "ECCp-" + strconv.Itoa(p.bits)
	}
	return "ECCp-unknown"
}

// BitSize returns the curve field's bit width, or 0 for an unknown id.
func (id CurveID) BitSize() int {
	return registry[id].bits
}

// IDs returns every registered curve id, ordered by increasing bit size.
func IDs() []CurveID {
	return []CurveID{ECCp79, ECCp89, ECCp97, ECCp109, ECCp131, ECCp163, ECCp191, ECCp239, ECCp359}
}

// params holds one curve's domain parameters as hex strings: p, a, b,
// base point (Px, Py), a sample private key, and its public point
// (Qx, Qy).
//
// The values here are the Certicom ECCp challenge parameters. Qx/Qy are
// taken from the published challenge documentation rather than from the
// upstream source's Q table, which duplicates P (a bug there — see
// DESIGN.md).
type params struct {
	bits int
	p, a, b, px, py, priv, qx, qy string
}

var registry = map[CurveID]params{
	ECCp79: {
		bits: 79,
		p:    "62CE5177412ACA899CF5",
		a:    "39C95E6DDDB1BC45733C",
		b:    "1F16D880E89D5A1C0ED1",
		px:   "315D4B201C208475057D",
		py:   "035F3DF5AB370252450A",
		priv: "02CE5177407B7258DC31",
		qx:   "0679834CEFB7215DC365",
		qy:   "4084BC50388C4E6FDFAB",
	},
	ECCp89: {
		bits: 89,
		p:    "0158685C903F1643908BA955",
		a:    "006F39B6CC51504A8AC22E63",
		b:    "00647E7EA1062AE69A7D1037",
		px:   "00C031D875DBF8E60BE95B0A",
		py:   "0006F82C1F879745BF676D0A",
		priv: "0058685C903EF906D7F58D47",
		qx:   "00DE1AA94FF94DB64E763E2D",
		qy:   "002A44C4C2D4EE27FA0A4BA9",
	},
	ECCp97: {
		bits: 97,
		p:    "016EA1595ED21AE4D8D8420E35",
		a:    "0047370916A603B07657C305C4",
		b:    "01124DF86D04064F503D9925AF",
		px:   "00D5D9E9DFF58A9232A2749EBC",
		py:   "011B34AE5AAB7C7AE55D6ABDB5",
		priv: "006EA1595ED21AE98FB6CCA20D",
		qx:   "00DF7E84C42FEF50C5316C508A",
		qy:   "00F259BC583729DA0FE8B97336",
	},
	ECCp109: {
		bits: 109,
		p:    "1BD579792B380B5B521E6D9FB599",
		a:    "0FD4C926FD178E9805E663021744",
		b:    "153D3CBB508FFE3A7F31FF4FAFFD",
		px:   "04CC974EBBCBFDC3636FEB9F11C7",
		py:   "07611B0EB1229C0BFC5F35521692",
		priv: "0BD579792B380B049C4D13A75AE5",
		qx:   "0233857E4E8B5F0055126E7D7B7C",
		qy:   "19C8C91063EB4276371D68B6B4D9",
	},
	ECCp131: {
		bits: 131,
		p:    "048E1D43F293469E33194C43186B3ABC0B",
		a:    "041CB121CE2B31F608A76FC8F23D73CB66",
		b:    "02F74F717E8DEC90991E5EA9B2FF03DA58",
		px:   "03DF84A96B5688EF574FA91A32E197198A",
		py:   "014721161917A44FB7B4626F36F0942E71",
		priv: "008E1D43F293469E317F7ED728F6B8E6F1",
		qx:   "03AA6F004FC62E2DA1ED0BFB62C3FFB568",
		qy:   "009C21C284BA8A445BB2701BF55E3A67ED",
	},
	ECCp163: {
		bits: 163,
		p:    "05177B8A2A0FD6A4FF55CDA06B0924E125F86CAD9B",
		a:    "043182D283FCE3880730C9A2FDD3F6016529A166AF",
		b:    "020C61E9459E53D8871BCAADC2DFC8AD5225228035",
		px:   "0017E7012277E1B4E43F7BF74657E8BE08BACA175B",
		py:   "00AA03A0A82690704697E8C504CB135B2B6EEF3C83",
		priv: "00177B8A2A0FD6A4FF55CCA7B8A1E21C88BD53B2C1",
		qx:   "01DC1E9A482085B3DFA722EB7A541D50505ED31DCA",
		qy:   "012D71ECC1578BFBE203D0C2CE238EB6060ADCAA1E",
	},
	ECCp191: {
		bits: 191,
		p:    "7DF5BB7BF830F63C77667331106F9001B27D39941032F5E5",
		a:    "3BD4FDA00A3E52E1AF5C9456686AB1B96195810C27C5B110",
		b:    "24D1D4331F8651B052E8042FA43255886E09BEF9D3174872",
		px:   "3B511BC3229CB4AE654DFBC63210E2783E91F43AA68D0EF4",
		py:   "4619A505395A031A304C0B72061099F3D0840CA61DE2F4BC",
		priv: "0DF5BB7BF830F63C776673315F1259168CF997380ACA72C3",
		qx:   "1DA38EF4CBA78B2CD1D31EB375BC9E1934C62ACED29C54EE",
		qy:   "4F3CA5FF71D32D5472D7F9ECD39DEF45517F3B876466C8F1",
	},
	ECCp239: {
		bits: 239,
		p:    "7CFB4C973A86CDAF898231E4960ACDBBF5B6A9017DBED75FFABDD892085D",
		a:    "76D4219CF7498B5B471E85BC4DABA3CE47ADC806228FBB0BCE197C4F4556",
		b:    "4F0911A649B98CD0D3F695695E44743EA948E70B78CAB2C24C4E7D50E2B3",
		px:   "0D35ED464403B23CC681F18534C14B6FA2ADE7720523F5094AD9BFBE4752",
		py:   "52F1BC7C3C7438A91099FDD53666A0185FB59688CA3E380840903B589BEB",
		priv: "0CFB4C973A86CDAF898231E4960ACCB3E442837A1D551D28F3B495F5EC5F",
		qx:   "2193DCEAE32BC6EF61653DE4F1A141C15A9A6A1A7296802A887EBC0C7667",
		qy:   "64297E89EE340CFF78A531998CC3F3376AFD3AE177DBE30B82C93045F79D",
	},
	ECCp359: {
		bits: 359,
		p:    "58D8420DF55D2B2000FE2A55A032AB225F544F8CB69CDF219B0E39423721F32A199D58685C903F1643908BA969",
		a:    "0877AEBB1771A6EEA1A7681809B68846818D6434EDF6B4EF2381672DE2CAE70CB1BA3E6A5FBD6DE67170E4FC62",
		b:    "3ADE22E91F88EC93165A5BA6F151AA1EF265FF5FD012F30B9A2D12A0E2C3F5D7E695DDB2FA75DE2139E61D8DC8",
		px:   "2F912B99AD5D761593C2CE9D2454EE91EFD1C698A0DA7C2EFE0DB8696406885E63EDB5CD29C2735EC12183312D",
		py:   "335E0C161BAB13BC46DE0CD4E0BA17913B9C1EE26A3DCF9022DE77431896F329D8283B3DC93C469564F9043CAA",
		priv: "08D8420DF55D2B2000FE2A55A032AB225F544F8CB69CD0BE1504766B9DD626631A535BA1BA6CB8D062F94102ED",
		qx:   "10E3208F62A90AE4AEF55EB0A71F7334432AF091C5E9D5046170C9835EC1B92167698DCD0B8E9040BDC3AFA0B0",
		qy:   "15038878664A36573C40D10B3F5FCD999EE1B619BFA84614EF172FEFD4949F188E39BB40E1A767A6DF7458A13D",
	},
}
