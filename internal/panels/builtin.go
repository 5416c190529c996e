package panels

import "SectorStrength/internal/model"

// builtin holds the dashboard panels in display order.
var builtin = []model.Group{
	{
		Key:        "panel_01",
		Title:      "1. Market ETFs Overview",
		BaseSymbol: "SPY",
		Symbols: []string{
			"SPY", "RSP", "QQQ", "DIA", "IWM", "XLK", "RYT", "XLV", "RYH", "XLF", "RYF", "XLY", "RCD",
			"XLP", "RHS", "XLE", "RYE", "XLI", "RGI", "XLB", "RTM", "XLC", "RSPC", "XLU", "RYU", "XLRE",
			"EWRE",
		},
	},
	{
		Key:        "panel_02",
		Title:      "2. Tech - Software & Services",
		BaseSymbol: "XLK",
		Symbols: []string{
			"XLK", "RYT", "FSLY", "RNG", "VIAV", "DOCN", "VNET", "KC", "LLYVA", "LLYVK", "WULF", "GDS",
			"ZM", "IDCC", "NTCT", "NN", "META", "NSIT", "FFIV", "RXO", "MRX", "FTNT", "NICE", "AUR", "AKAM",
			"TDC", "SLDE", "DLB", "MTCH", "INGM", "BILL", "RUM", "ETOR", "J", "NET", "DBX", "HNGE", "CDW",
			"DLO", "YOU", "GOOGL", "GOOG", "ADEA", "KBR", "DDOG", "NBIS", "SPOT", "CDNS", "TRMB", "ACIW",
			"PTC", "IAC", "SRAD", "NFLX", "S", "OPLN", "STRK", "PLUS", "BILI", "TWLO", "FIG", "EQPT",
			"SEZL", "NTNX", "TME", "LIF", "CRWV", "HPQ", "CORZ", "CACI", "GRND", "ALRM", "XMTR", "ATHM",
			"PSN", "DT", "TENB", "HUT", "RBA", "DXC", "LDOS", "BLKB", "BB", "CARG", "CHKP", "ADSK", "MDB",
			"ADBE", "GEN", "BSY", "BOX", "PEGA", "IBM", "PONY", "TEM", "SEI", "CRWD", "GDDY", "VRSN", "WIT",
			"MANH", "ROKU", "CRCL", "SNPS", "RIOT", "OTEX", "BIDU", "MBLY", "WIX", "PAYX", "JKHY", "DOX",
			"SSNC", "GIB", "AVPT", "BR", "OKTA", "CRM", "WAY", "IOT", "PL", "VRSK", "ESTC", "SNOW", "ROP",
			"TTWO", "VEEV", "SAIC", "ORCL", "CNXC", "GWRE", "SAIL", "BLSH", "APPF", "NOW", "TOST", "MSTR",
			"ZETA", "PCOR", "CRDO", "FIS", "COMP", "PANW", "WRD", "CIFR", "CLBT", "PLTR", "INFY", "DOCU",
			"QTWO", "GTLB", "DSGX", "RBLX", "CTSH", "ACN", "CSGP", "ZS", "CVLT", "RBRK", "PAYC", "HUBS",
			"PCTY", "DUOL", "CLSK", "MARA", "BULL", "APP", "WDAY", "MMYT", "PATH", "HTFL", "SOUN", "TYL",
			"TTAN", "AGYS", "WK", "TTD", "VRNS", "NAVN", "EXLS", "GLOB", "INTU", "KVYO", "QLYS", "NTSK",
			"BL", "SNAP", "PINS", "IT", "TRI", "ZG", "FRSH", "Z", "RDDT", "VERX", "EPAM", "CCC", "SPSC",
			"STUB", "TEAM", "NIQ", "DOCS", "MNDY", "KD", "U",
		},
	},
	{
		Key:        "panel_03",
		Title:      "3. Tech - Hardware & Semis",
		BaseSymbol: "SMH",
		Symbols: []string{
			"SMH", "SOXX", "IPGP", "GLW", "CGNX", "TER", "SNDK", "CIEN", "VRT", "UI", "ENPH", "AAOI",
			"AEIS", "LFUS", "ASX", "COHR", "WDC", "ESE", "GRMN", "STX", "NXT", "STM", "LASR", "RUN",
			"MOG.A", "ADI", "DIOD", "FORM", "DBD", "Q", "BHE", "HWM", "LSCC", "BELFB", "BELFA", "ALGM",
			"SIMO", "MPWR", "MU", "TXN", "KN", "KEYS", "ARM", "ON", "FN", "AIR", "NATL", "CRUS", "TSM",
			"PLXS", "ST", "SMTC", "ASML", "NOVT", "SITM", "FTV", "VSAT", "DELL", "TTMI", "CW", "VSH",
			"PLAB", "NTAP", "MTSI", "CSCO", "VICR", "NVDA", "NVT", "ZBRA", "PSTG", "ATRO", "MCHP", "SXI",
			"VISN", "POWI", "HII", "GFS", "HPE", "ANET", "SWKS", "FTAI", "ESLT", "TEL", "MCHPP", "SMCI",
			"CAMT", "QRVO", "ITRI", "AMBA", "EMR", "MTRN", "FLEX", "OSIS", "ONTO", "KLAC", "AVGO", "BWXT",
			"NXPI", "FSLR", "MRVL", "APH", "TSEM", "CALX", "SYNA", "NVMI", "BE", "AMKR", "DRS", "CLS", "BA",
			"LOAR", "MRCY", "AMTM", "OLED", "INTC", "RMBS", "AMD", "SANM", "RAL", "PI", "LUNR", "MIR",
			"PLUG", "ACHR", "RKLB", "AVAV", "KRMN", "KTOS", "ONDS", "ALAB", "AXON", "JOBY", "BETA", "QBTS",
			"FLY", "RGTI", "IONQ",
		},
	},
	{
		Key:        "panel_04",
		Title:      "4. Financials",
		BaseSymbol: "XLF",
		Symbols: []string{
			"XLF", "RYF", "MBIN", "CASH", "XP", "SNEX", "IRM", "BBDO", "SII", "BBT", "TW", "FFBC", "BBD",
			"HG", "UNIT", "VLY", "VCTR", "CACC", "EBC", "BEN", "BSBR", "INDB", "HASI", "MPT", "FLG", "RNR",
			"MAC", "IFS", "INTR", "VIRT", "SPNT", "BFH", "ACT", "LU", "BGC", "WAL", "WSC", "TCBI", "HGV",
			"BAP", "MCHB", "GBCI", "LINE", "OUT", "SMA", "MKTX", "JXN", "CBC", "AX", "MTH", "ZION", "IBKR",
			"NMIH", "MGRC", "PNFP", "WFC", "C", "CIB", "FFIN", "NU", "VOYA", "STT", "WU", "CCI", "BN",
			"BMA", "COLD", "GCMG", "PRI", "WD", "CRBG", "LNC", "BUR", "KYIV", "FNF", "BBAR", "BAM", "AB",
			"URI", "AVAL", "HRI", "PK", "BANC", "GS", "BK", "BLK", "LAZ", "FRHC", "CNS", "GGAL", "LXP",
			"SEIC", "EQH", "MCY", "APAM", "FRMI", "MS", "CUBI", "FSV", "AON", "ERIE", "AMP", "FCNCA",
			"DAVE", "FG", "PRVA", "KSPI", "RJF", "SF", "MIAX", "ENVA", "HQY", "WTW", "SCHW", "ARE", "PLMR",
			"HGTY", "IVZ", "BXP", "UHAL.B", "KNSL", "OBDC", "UHAL", "TROW", "COF", "CUZ", "HHH", "FUTU",
			"JLL", "ICE", "OMF", "AMG", "EVR", "VNO", "PIPR", "HLI", "CBRE", "BRO", "APO/PA", "NMRK", "KRC",
			"JEF", "LPLA", "SLM", "TBBK", "HIW", "KKR/PD", "APO", "CG", "AJG", "OTF", "NDAQ", "MC", "NP",
			"HTGC", "RKT", "PAX", "KKR", "CHYM", "UWMC", "SLG", "PJT", "ARES/PB", "CAR", "RYAN", "CIGI",
			"CWK", "BX", "OPEN", "COIN", "ARES", "SOFI", "ARX", "AFRM", "XXI", "LMND", "HOOD", "HLNE",
			"CRVL", "BMNR", "TPG", "OWL", "STEP", "GLXY", "UPST", "PFSI", "BWIN",
		},
	},
	{
		Key:        "panel_05",
		Title:      "5. Producer Manufacturing",
		BaseSymbol: "XLI",
		Symbols: []string{
			"XLI", "RGI", "LITE", "MOD", "RRX", "GNRC", "UCTT", "ACMR", "POWL", "BDC", "OII", "CYD", "BWA",
			"AGCO", "DAN", "KLIC", "CNH", "GTES", "GEV", "MKSI", "CAT", "WWD", "CECO", "TKR", "EFXT",
			"SEDG", "AMAT", "KMT", "ATS", "CSL", "NPO", "FLS", "ATMU", "CARR", "NWL", "TEX", "ITT", "ENTG",
			"HLIO", "LEA", "PSIX", "LECO", "PHIN", "SPXC", "IR", "HUBB", "LII", "ETN", "LRCX", "AAON",
			"JBL", "WMS", "WSO", "ESAB", "ALH", "GFF", "LCII", "KAI", "BRC", "GTX", "MHK", "BC", "CMI",
			"APTV", "ENS", "CXT", "VC", "AYI", "TGLS", "YETI", "ROK", "HSAI", "PNR", "BMI", "ATKR", "VLTO",
			"FBIN", "MLI", "ACLS", "SYM", "SMR", "OKLO", "QS", "EOSE",
		},
	},
	{
		Key:        "panel_06",
		Title:      "6. Non-Energy Minerals (Materials)",
		BaseSymbol: "XLB",
		Symbols: []string{
			"XLB", "RTM", "ALM", "ATI", "SSRM", "AG", "SKE", "KNF", "CRS", "CSTM", "AGI", "AUGO", "FSM",
			"TECK", "STLD", "TTAM", "TGB", "WS", "SCCO", "USAS", "DNN", "IAG", "ORLA", "PAAS", "BTG", "JHX",
			"AEM", "NGD", "CENX", "AU", "CDE", "FCX", "EQX", "ARIS", "SA", "WPM", "NG", "EXP", "EXK", "CX",
			"CRH", "CGAU", "CCJ", "FNV", "RGLD", "NXE", "NEM", "CMC", "BVN", "KALU", "SID", "HBM", "RS",
			"GFI", "OR", "EGO", "TREX", "TFPM", "WFG", "AA", "ERO", "B", "DRD", "UUUU", "SVM", "SBSW",
			"KGC", "PPTA", "HMY", "LPX", "UEC", "HL/PB", "USLM", "HL", "IE", "MP", "TMC", "CLF", "LEU",
		},
	},
	{
		Key:        "panel_07",
		Title:      "7. Consumer Services",
		BaseSymbol: "XLY",
		Symbols: []string{
			"XLY", "RCD", "CHTR", "SPHR", "LRN", "NCLH", "RCL", "LYV", "OSW", "CUK", "MSGS", "CCL", "VIK",
			"CAKE", "DRVN", "HTHT", "EDU", "MGM", "NXST", "MSGE", "TNL", "WH", "CNK", "LTH", "ATAT", "H",
			"CHH", "ARMK", "SIRI", "TKO", "RRR", "WYNN", "VAC", "MTN", "CAVA", "RSI", "ANDG", "ABNB",
			"SHAK", "MLCO", "SGHC", "GHC", "WING", "CMG", "DIS", "PLNT", "PSKY", "CZR", "VSNT", "TXRH",
			"EAT", "NWSA", "CHDN", "LION", "NWS", "BKNG", "ATGE", "FOX", "BROS", "FOXA", "HRB", "EXPE",
			"GBTG", "DKNG", "FLUT",
		},
	},
	{
		Key:        "panel_08",
		Title:      "8. Retail Trade",
		BaseSymbol: "XRT",
		Symbols: []string{
			"XRT", "AAP", "TPR", "RUSHA", "GRDN", "TBBB", "FIVE", "RUSHB", "BBWI", "GAP", "GME", "TGT",
			"SAH", "KR", "WMT", "BJ", "KSS", "WSM", "M", "SIG", "VSCO", "BURL", "ASO", "DG", "TSCO", "DLTR",
			"PAG", "BOOT", "GLBE", "EYE", "DKS", "AEO", "BBY", "DDS", "MELI", "EBAY", "URBN", "CVS", "FND",
			"OLLI", "SE", "SFM", "RH", "KMX", "AN", "ANF", "ABG", "CPNG", "AMZN", "CPRI", "MUSA", "BLDR",
			"LAD", "CPRT", "WRBY", "ETSY", "GPI", "CHWY", "PLBL", "CVNA", "W",
		},
	},
	{
		Key:        "panel_09",
		Title:      "9. Commercial Services",
		BaseSymbol: "SPGI",
		Symbols: []string{
			"SPGI", "RELY", "STNE", "LB", "CPAY", "GPN", "ULS", "ANDE", "PAGS", "NAMS", "OMC", "WEX", "TAL",
			"VVX", "WMG", "EEFT", "BBU", "ADT", "MH", "FISV", "EFX", "RHI", "LAUR", "KFY", "MSCI", "FOUR",
			"TRU", "CAE", "BZ", "PAY", "WPP", "FCN", "FICO", "GPGI", "LOPE", "TIC", "SHOP", "G", "MCO",
			"XYZ", "BAH", "PICS", "SPGI", "BFAM", "CRL", "MORN", "MMS", "MEDP", "PYPL", "HURN", "DJT",
			"FDS", "ICLR", "KLAR",
		},
	},
	{
		Key:        "panel_10",
		Title:      "10. Consumer Staples",
		BaseSymbol: "XLP",
		Symbols: []string{
			"XLP", "RHS", "UAA", "UA", "DAR", "CENT", "COLM", "CENTA", "CROX", "DECK", "COKE", "KTB", "ZGN",
			"HLF", "TPB", "PVH", "VFC", "LW", "BF.A", "BF.B", "KHC", "FRPT", "POST", "BIRK", "LEVI", "SAM",
			"ONON", "CAG", "RL", "ASH", "ELF", "NKE", "CPB", "GIS", "REYN", "MICC", "TAP", "COCO", "EL",
			"PRMB", "LULU", "AKO.B", "STZ", "SXT", "FLO", "SHOO", "CELH", "COTY", "ARW", "DXPE", "MCK",
			"USFD", "UNFI", "CHEF", "SNX", "QXO", "GWW", "CAH", "WCC", "SITE", "COR", "HSIC", "REZI", "AIT",
			"CNM", "BCC", "DNOW", "GPC", "POOL",
		},
	},
	{
		Key:        "panel_11",
		Title:      "11. Industrial Services",
		BaseSymbol: "XLI",
		Symbols: []string{
			"XLI", "VAL", "RIG", "NE", "KGS", "LBRT", "NESR", "FIX", "SDRL", "STRL", "FLR", "WFRD", "ROAD",
			"FTI", "PWR", "EME", "MTZ", "DY", "ECG", "KNTK", "TPC", "PTEN", "LGN", "DKL", "FLOC", "AGX",
			"PRIM", "IESC", "NOV", "MYRG", "VG", "HP", "VSEC", "WHD", "IBP", "IHS", "BLD", "ACM", "TTEK",
			"GFL", "BBUC", "EXPO", "CWST", "STN",
		},
	},
	{
		Key:        "panel_12",
		Title:      "12. Transportation",
		BaseSymbol: "IYT",
		Symbols: []string{
			"IYT", "XTN", "XPO", "ZIM", "TDW", "STNG", "LUV", "SAIA", "ARCB", "SBLK", "TNK", "GXO", "R",
			"ODFL", "JBLU", "KNX", "JBHT", "MATX", "CMRE", "VNT", "TFII", "WERN", "CAAP", "ALK", "CHRW",
			"CPA", "SKYW", "AERO", "PFGC", "DAL", "UAL", "SNDR", "LSTR", "EXPD", "LTM", "GRAB", "CART",
			"HUBG", "AAL", "UBER", "DASH", "VRRM", "LYFT",
		},
	},
	{
		Key:        "panel_13",
		Title:      "13. Process Industries",
		BaseSymbol: "XLB",
		Symbols: []string{
			"XLB", "SSL", "SOLS", "ESI", "CE", "EMN", "DD", "SW", "AVNT", "WDFC", "LYB", "KWR", "DOW",
			"AMBP", "IP", "WLK", "BG", "NGVT", "HUN", "OC", "CALM", "CF", "CBT", "CC", "MOS", "MEOH", "OLN",
			"SEB", "GEL", "ADM", "OI", "IOSP", "PPC", "CSW", "ALB", "HWKN", "NEU", "ALB/PA", "PRM", "SQM",
			"GPK",
		},
	},
	{
		Key:        "panel_14",
		Title:      "14. Energy",
		BaseSymbol: "XLE",
		Symbols: []string{
			"XLE", "RYE", "CLMT", "CRGY", "SM", "DK", "CVE", "OVV", "NOG", "CRC", "IMO", "MNR", "DVN",
			"MTDR", "TALO", "VIST", "MGY", "CTRA", "XPRO", "EQT", "BKV", "APA", "PARR", "CHRD", "BTE",
			"RRC", "MPC", "YPF", "PBF", "CNX", "MUR", "GPOR", "AR", "DINO", "EXE", "EC", "CNR", "BTU",
			"CVI", "CRK", "HCC", "AMR",
		},
	},
	{
		Key:        "panel_15",
		Title:      "15. Consumer Durables",
		BaseSymbol: "XHB",
		Symbols: []string{
			"XHB", "HAS", "OSK", "AS", "SWK", "TOL", "GRBK", "NIO", "PHM", "TMHC", "KBH", "PATK", "DHI",
			"MHO", "CCS", "SN", "LKQ", "SKY", "IMAX", "NVR", "LEN", "THO", "HOG", "GT", "CALY", "TSLA",
			"WHR", "SGI", "PII", "LCID", "FTDR", "RIVN", "XPEV", "CVCO", "MAT", "STLA",
		},
	},
	{
		Key:        "panel_16",
		Title:      "16. Comms, Utilities & Misc",
		BaseSymbol: "XLC",
		Symbols: []string{
			"XLC", "RSPC", "XLU", "RYU", "SKM", "LBRDK", "LBRDA", "LBTYA", "LBTYK", "IRDM", "TMUS", "AMX",
			"TIGO", "TEO", "GSAT", "LUMN", "SATS", "ASTS", "ENLT", "CSAN", "AXIA/PC", "AXIA/P", "NRG",
			"CTRI", "HE", "BEPC", "VST", "CEPU", "XIFR", "TLN", "TGS", "TAC", "PAM", "CEG", "ORA", "AWK",
			"TPL", "WT", "CEF", "FSK", "PSLV",
		},
	},
}
