package selector

// tldServers is the static TLD -> WHOIS host table, transliterated from
// async43/whois.py's NICClient.choose_server elif chain and cross-checked
// against apimgr-search's instant.WHOISHandler table for the generic
// TLDs they share.
var tldServers = map[string]string{
	"com":  "whois.verisign-grs.com",
	"net":  "whois.verisign-grs.com",
	"org":  "whois.pir.org",
	"info": "whois.afilias.net",
	"biz":  "whois.biz",
	"name": "whois.nic.name",
	"mobi": "whois.dotmobiregistry.net",
	"pro":  "whois.registrypro.pro",
	"aero": "whois.aero",
	"asia": "whois.nic.asia",
	"coop": "whois.nic.coop",
	"edu":  "whois.educause.edu",
	"gov":  "whois.dotgov.gov",
	"int":  "whois.iana.org",
	"jobs": "whois.nic.jobs",
	"mil":  "whois.nic.mil",
	"tel":  "whois.nic.tel",
	"xxx":  "whois.nic.xxx",
	"io":   "whois.nic.io",
	"co":   "whois.nic.co",
	"me":   "whois.nic.me",
	"tv":   "whois.nic.tv",
	"cc":   "ccwhois.verisign-grs.com",
	"ws":   "whois.website.ws",
	"ly":   "whois.nic.ly",

	"ac":      "whois.nic.ac",
	"ad":      "whois.ripe.net",
	"ae":      "whois.aeda.net.ae",
	"af":      "whois.nic.af",
	"ag":      "whois.nic.ag",
	"ai":      "whois.nic.ai",
	"al":      "whois.ripe.net",
	"am":      "whois.amnic.net",
	"app":     "whois.nic.google",
	"ar":      "whois.nic.ar",
	"as":      "whois.nic.as",
	"at":      "whois.nic.at",
	"au":      "whois.auda.org.au",
	"ax":      "whois.ax",
	"az":      "whois.ripe.net",
	"ba":      "whois.ripe.net",
	"be":      "whois.dns.be",
	"bg":      "whois.register.bg",
	"bi":      "whois1.nic.bi",
	"bj":      "whois.nic.bj",
	"bn":      "whois.bnnic.bn",
	"bo":      "whois.nic.bo",
	"br":      "whois.registro.br",
	"bw":      "whois.nic.net.bw",
	"by":      "whois.cctld.by",
	"bz":      "whois.tcinet.ru",
	"ca":      "whois.cira.ca",
	"chat":    "whois.nic.chat",
	"ch":      "whois.nic.ch",
	"ci":      "whois.nic.ci",
	"city":    "whois.tcinet.ru",
	"cl":      "whois.nic.cl",
	"cm":      "whois.netcom.cm",
	"cn":      "whois.cnnic.cn",
	"cr":      "whois.nic.cr",
	"cx":      "whois.nic.cx",
	"cz":      "whois.nic.cz",
	"de":      "whois.denic.de",
	"design":  "whois.nic.design",
	"dev":     "whois.nic.google",
	"direct":  "whois.identitydigital.services",
	"dk":      "whois.dk-hostmaster.dk",
	"dm":      "whois.nic.dm",
	"do":      "whois.nic.do",
	"dz":      "whois.nic.dz",
	"ec":      "whois.nic.ec",
	"ee":      "whois.tld.ee",
	"es":      "whois.nic.es",
	"eu":      "whois.eu",
	"fashion": "whois.dnrs.godaddy",
	"fi":      "whois.fi",
	"fm":      "whois.nic.fm",
	"fo":      "whois.nic.fo",
	"fr":      "whois.nic.fr",
	"ga":      "whois.nic.ga",
	"games":   "whois.nic.games",
	"gd":      "whois.nic.gd",
	"ge":      "whois.nic.ge",
	"gg":      "whois.gg",
	"gi":      "whois2.afilias-grs.net",
	"gl":      "whois.nic.gl",
	"goog":    "whois.nic.google",
	"google":  "whois.nic.google",
	"gp":      "whois.nic.gp",
	"gr":      "grweb.ics.forth.gr",
	"group":   "whois.namecheap.com",
	"gs":      "whois.nic.gs",
	"gy":      "whois.registry.gy",
	"hk":      "whois.hkirc.hk",
	"hn":      "whois.nic.hn",
	"hr":      "whois.dns.hr",
	"ht":      "whois.nic.ht",
	"hu":      "whois.nic.hu",
	"id":      "whois.pandi.or.id",
	"ie":      "whois.iedr.ie",
	"il":      "whois.isoc.org.il",
	"im":      "whois.nic.im",
	"immo":    "whois.identitydigital.services",
	"in":      "whois.registry.in",
	"iq":      "whois.cmc.iq",
	"ir":      "whois.nic.ir",
	"is":      "whois.isnic.is",
	"ist":     "whois.afilias-srs.net",
	"it":      "whois.nic.it",
	"je":      "whois.je",
	"jp":      "whois.jprs.jp",
	"ke":      "whois.kenic.or.ke",
	"kg":      "whois.kg",
	"ki":      "whois.nic.ki",
	"kr":      "whois.kr",
	"kw":      "whois.nic.kw",
	"kz":      "whois.nic.kz",
	"la":      "whois.nic.la",
	"lat":     "whois.nic.lat",
	"li":      "whois.nic.li",
	"life":    "whois.identitydigital.services",
	"live":    "whois.nic.live",
	"lt":      "whois.domreg.lt",
	"lu":      "whois.dns.lu",
	"lv":      "whois.nic.lv",
	"ma":      "whois.registre.ma",
	"market":  "whois.nic.market",
	"md":      "whois.nic.md",
	"mg":      "whois.nic.mg",
	"mk":      "whois.marnet.mk",
	"ml":      "whois.dot.ml",
	"mn":      "whois.nic.mn",
	"mo":      "whois.monic.mo",
	"money":   "whois.nic.money",
	"mp":      "whois.nic.mp",
	"mq":      "whois.mediaserv.net",
	"ms":      "whois.nic.ms",
	"mt":      "whois.nic.org.mt",
	"mu":      "whois.nic.mu",
	"mw":      "whois.nic.mw",
	"mx":      "whois.mx",
	"my":      "whois.mynic.my",
	"mz":      "whois.nic.mz",
	"na":      "whois.na-nic.com.na",
	"nc":      "whois.nc",
	"nf":      "whois.nic.nf",
	"ng":      "whois.nic.net.ng",
	"nl":      "whois.domain-registry.nl",
	"no":      "whois.norid.no",
	"nu":      "whois.iis.nu",
	"nz":      "whois.srs.net.nz",
	"om":      "whois.registry.om",
	"online":  "whois.nic.online",
	"ooo":     "whois.nic.ooo",
	"page":    "whois.nic.page",
	"pe":      "kero.yachay.pe",
	"pf":      "whois.registry.pf",
	"pk":      "whois.pknic.net.pk",
	"pl":      "whois.dns.pl",
	"pm":      "whois.nic.pm",
	"pr":      "whois.nic.pr",
	"ps":      "whois.pnina.ps",
	"pt":      "whois.dns.pt",
	"pw":      "whois.nic.pw",
	"qa":      "whois.registry.qa",
	"re":      "whois.nic.re",
	"ro":      "whois.rotld.ro",
	"rs":      "whois.rnids.rs",
	"ru":      "whois.tcinet.ru",
	"rw":      "whois.ricta.org.rw",
	"sa":      "whois.nic.net.sa",
	"sb":      "whois.nic.net.sb",
	"sbs":     "whois.nic.sbs",
	"sc":      "whois.nic.sc",
	"se":      "whois.iis.se",
	"sg":      "whois.sgnic.sg",
	"sh":      "whois.nic.sh",
	"shop":    "whois.nic.shop",
	"si":      "whois.register.si",
	"site":    "whois.nic.site",
	"sk":      "whois.sk-nic.sk",
	"sl":      "whois.nic.sl",
	"sm":      "whois.nic.sm",
	"sn":      "whois.nic.sn",
	"so":      "whois.nic.so",
	"st":      "whois.nic.st",
	"store":   "whois.centralnic.com",
	"studio":  "whois.nic.studio",
	"style":   "whois.tcinet.ru",
	"su":      "whois.tcinet.ru",
	"sx":      "whois.sx",
	"sy":      "whois.tld.sy",
	"tc":      "whois.nic.tc",
	"tf":      "whois.nic.tf",
	"th":      "whois.thnic.co.th",
	"tj":      "whois.nic.tj",
	"tk":      "whois.dot.tk",
	"tl":      "whois.nic.tl",
	"tm":      "whois.nic.tm",
	"tn":      "whois.ati.tn",
	"to":      "whois.tonic.to",
	"tr":      "whois.nic.tr",
	"tw":      "whois.twnic.net.tw",
	"tz":      "whois.tznic.or.tz",
	"ua":      "whois.ua",
	"ug":      "whois.co.ug",
	"uk":      "whois.nic.uk",
	"us":      "whois.nic.us",
	"uy":      "whois.nic.org.uy",
	"uz":      "whois.cctld.uz",
	"vc":      "whois.nic.vc",
	"ve":      "whois.nic.ve",
	"vg":      "whois.nic.vg",
	"vip":     "whois.dnrs.godaddy",
	"website": "whois.nic.website",
	"wf":      "whois.nic.wf",
	"xyz":     "whois.nic.xyz",
	"yt":      "whois.nic.yt",
	"za":      "whois.registry.net.za",
}

// fixedSuffixes maps a trailing domain suffix to its dedicated host,
// checked before the bare-TLD table, per spec §4.2. Suffixes are lower
// case because Choose lower-cases the domain before matching.
var fixedSuffixes = []struct {
	suffix string
	host   string
}{
	{"-norid", "whois.norid.no"},
	{".id", "whois.pandi.or.id"},
	{".hr", "whois.dns.hr"},
	{".pp.ua", "whois.pp.ua"},
}

// IANAHost and ARINHost are exported so the lookup driver can recognize
// when a referral hop has landed on one of them without importing the
// whole static table.
const (
	IANAHost = "whois.iana.org"
	ARINHost = "whois.arin.net"
)

// ARINReferralHosts is the set of regional-registry hosts findReferral
// scans for when a reply from ARIN contains no explicit "Whois Server:"
// line, grounded on async43/whois.py's NICClient.ip_whois list.
var ARINReferralHosts = []string{
	"whois.lacnic.net",
	"whois.ripe.net",
	"whois.apnic.net",
	"whois.registro.br",
	"whois.pandi.or.id",
}
