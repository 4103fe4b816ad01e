// Package exchanges holds the static listing reference data: which ticker
// symbols are tradable on each supported exchange. Snapshots, not live
// data; update by hand when listings change.
package exchanges

// Poloniex lists the symbols tradable on Poloniex.
var Poloniex = []string{
	"BCN", "BELA", "BLK", "BTCD", "BTM", "BTS", "BURST", "CLAM", "DASH", "DGB",
	"DOGE", "EMC2", "FLDC", "FLO", "GAME", "GRC", "HUC", "LTC", "MAID", "OMNI",
	"NAV", "NEOS", "NMC", "NXT", "PINK", "POT", "PPC", "RIC", "STR", "SYS",
	"VIA", "XVC", "VRC", "VTC", "XBC", "XCP", "XEM", "XMR", "XPM", "XRP",
	"ETH", "SC", "BCY", "EXP", "FCT", "RADS", "AMP", "DCR", "LSK", "LBC",
	"STEEM", "SBD", "ETC", "REP", "ARDR", "ZEC", "STRAT", "NXC", "PASC", "GNT",
	"GNO", "BCH", "ZRX", "CVC", "OMG", "GAS", "STORJ",
}

// Bittrex lists the symbols tradable on Bittrex.
var Bittrex = []string{
	"LTC", "DOGE", "VTC", "PPC", "FTC", "RDD", "NXT", "DASH", "POT", "BLK",
	"EMC2", "XMY", "AUR", "EFL", "GLD", "SLR", "PTC", "GRS", "NLG", "RBY",
	"XWC", "MONA", "THC", "ENRG", "ERC", "VRC", "CURE", "XMR", "CLOAK", "START",
	"KORE", "XDN", "TRUST", "NAV", "XST", "BTCD", "VIA", "PINK", "IOC", "CANN",
	"SYS", "NEOS", "DGB", "BURST", "EXCL", "SWIFT", "DOPE", "BLOCK", "ABY", "BYC",
	"XMG", "BLITZ", "BAY", "FAIR", "SPR", "VTR", "XRP", "GAME", "COVAL", "NXS",
	"XCP", "BITB", "GEO", "FLDC", "GRC", "FLO", "NBT", "MUE", "XEM", "CLAM",
	"DMD", "GAM", "SPHR", "OK", "SNRG", "PKB", "CPC", "AEON", "ETH", "GCR",
	"TX", "BCY", "EXP", "INFX", "OMNI", "AMP", "AGRS", "XLM", "CLUB", "VOX",
	"EMC", "FCT", "MAID", "EGC", "SLS", "RADS", "DCR", "BSD", "XVG", "PIVX",
	"XVC", "MEME", "STEEM", "2GIVE", "LSK", "PDC", "BRK", "DGD", "WAVES", "RISE",
	"LBC", "SBD", "BRX", "ETC", "STRAT", "UNB", "SYNX", "TRIG", "EBST", "VRM",
	"SEQ", "REP", "SHIFT", "ARDR", "XZC", "NEO", "ZEC", "ZCL", "IOP", "GOLOS",
	"UBQ", "KMD", "GBG", "SIB", "ION", "LMC", "QWARK", "CRW", "SWT", "MLN",
	"ARK", "DYN", "TKS", "MUSIC", "DTB", "INCNT", "GBYTE", "GNT", "NXC", "EDG",
	"LGD", "TRST", "WINGS", "RLC", "GNO", "GUP", "LUN", "APX", "HMQ", "ANT",
	"SC", "BAT", "ZEN", "1ST", "QRL", "CRB", "PTOY", "MYST", "CFI", "BNT",
	"NMR", "SNT", "DCT", "XEL", "MCO", "ADT", "FUN", "PAY", "MTL", "STORJ",
	"ADX", "OMG", "CVC", "PART", "QTUM", "BCC", "DNT", "ADA", "MANA", "SALT",
	"TIX", "RCN", "VIB", "MER", "POWR", "BTG", "ENG", "UKG",
}
