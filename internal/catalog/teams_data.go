package catalog

// BuiltinTeams returns the seed team database: major European leagues,
// national teams, and the other clubs that show up in the scraped
// catalogs. Aliases mix English, French, Chinese, Spanish, Portuguese,
// and Arabic forms as they appear in album titles.
func BuiltinTeams() []Team {
	return []Team{
		// Premier League
		{Key: "arsenal", Name: "Arsenal FC", Short: "Arsenal", Aliases: []string{"arsenal", "gunners", "afc", "阿森纳", "arsenal fc"}, League: "Premier League", Country: "England"},
		{Key: "aston villa", Name: "Aston Villa FC", Short: "Aston Villa", Aliases: []string{"aston villa", "villa", "avfc", "阿斯顿维拉"}, League: "Premier League", Country: "England"},
		{Key: "bournemouth", Name: "AFC Bournemouth", Short: "Bournemouth", Aliases: []string{"bournemouth", "afcb", "cherries", "伯恩茅斯"}, League: "Premier League", Country: "England"},
		{Key: "brentford", Name: "Brentford FC", Short: "Brentford", Aliases: []string{"brentford", "bees"}, League: "Premier League", Country: "England"},
		{Key: "brighton", Name: "Brighton & Hove Albion FC", Short: "Brighton", Aliases: []string{"brighton", "bhafc", "seagulls", "brighton hove"}, League: "Premier League", Country: "England"},
		{Key: "burnley", Name: "Burnley FC", Short: "Burnley", Aliases: []string{"burnley", "clarets"}, League: "Premier League", Country: "England"},
		{Key: "chelsea", Name: "Chelsea FC", Short: "Chelsea", Aliases: []string{"chelsea", "cfc", "blues", "切尔西"}, League: "Premier League", Country: "England"},
		{Key: "crystal palace", Name: "Crystal Palace FC", Short: "Crystal Palace", Aliases: []string{"crystal palace", "cpfc", "eagles", "水晶宫"}, League: "Premier League", Country: "England"},
		{Key: "everton", Name: "Everton FC", Short: "Everton", Aliases: []string{"everton", "efc", "toffees", "埃弗顿"}, League: "Premier League", Country: "England"},
		{Key: "fulham", Name: "Fulham FC", Short: "Fulham", Aliases: []string{"fulham", "ffc", "cottagers"}, League: "Premier League", Country: "England"},
		{Key: "ipswich town", Name: "Ipswich Town FC", Short: "Ipswich", Aliases: []string{"ipswich", "ipswich town", "tractor boys"}, League: "Premier League", Country: "England"},
		{Key: "leeds united", Name: "Leeds United FC", Short: "Leeds", Aliases: []string{"leeds", "leeds united", "lufc", "whites"}, League: "Championship", Country: "England"},
		{Key: "leicester city", Name: "Leicester City FC", Short: "Leicester", Aliases: []string{"leicester", "leicester city", "lcfc", "foxes", "莱斯特城"}, League: "Championship", Country: "England"},
		{Key: "liverpool", Name: "Liverpool FC", Short: "Liverpool", Aliases: []string{"liverpool", "lfc", "reds", "利物浦"}, League: "Premier League", Country: "England"},
		{Key: "luton town", Name: "Luton Town FC", Short: "Luton", Aliases: []string{"luton", "luton town", "hatters"}, League: "Championship", Country: "England"},
		{Key: "manchester city", Name: "Manchester City FC", Short: "Man City", Aliases: []string{"manchester city", "man city", "mcfc", "城", "曼城", "曼彻斯特城", "sky blues"}, League: "Premier League", Country: "England"},
		{Key: "manchester united", Name: "Manchester United FC", Short: "Man United", Aliases: []string{"manchester united", "man united", "man utd", "mufc", "曼联", "曼彻斯特联", "red devils"}, League: "Premier League", Country: "England"},
		{Key: "newcastle united", Name: "Newcastle United FC", Short: "Newcastle", Aliases: []string{"newcastle", "newcastle united", "nufc", "magpies", "纽卡斯尔"}, League: "Premier League", Country: "England"},
		{Key: "nottingham forest", Name: "Nottingham Forest FC", Short: "Nottingham Forest", Aliases: []string{"nottingham forest", "nffc", "forest", "诺丁汉森林"}, League: "Premier League", Country: "England"},
		{Key: "sheffield united", Name: "Sheffield United FC", Short: "Sheffield Utd", Aliases: []string{"sheffield united", "sufc", "blades"}, League: "Championship", Country: "England"},
		{Key: "tottenham hotspur", Name: "Tottenham Hotspur FC", Short: "Tottenham", Aliases: []string{"tottenham", "spurs", "thfc", "热刺", "托特纳姆", "tottenham hotspur"}, League: "Premier League", Country: "England"},
		{Key: "west ham united", Name: "West Ham United FC", Short: "West Ham", Aliases: []string{"west ham", "whufc", "hammers", "west ham united", "西汉姆"}, League: "Premier League", Country: "England"},
		{Key: "wolverhampton", Name: "Wolverhampton Wanderers FC", Short: "Wolves", Aliases: []string{"wolves", "wolverhampton", "wwfc", "wolfs", "狼队", "wolverhampton wanderers"}, League: "Premier League", Country: "England"},

		// La Liga
		{Key: "real madrid", Name: "Real Madrid CF", Short: "Real Madrid", Aliases: []string{"real madrid", "real", "rmcf", "皇家马德里", "皇马", "los blancos"}, League: "La Liga", Country: "Spain"},
		{Key: "barcelona", Name: "FC Barcelona", Short: "Barcelona", Aliases: []string{"barcelona", "barca", "barça", "fcb", "巴塞罗那", "巴萨", "blaugrana"}, League: "La Liga", Country: "Spain"},
		{Key: "atletico madrid", Name: "Atlético de Madrid", Short: "Atlético Madrid", Aliases: []string{"atletico madrid", "atletico", "atlético", "atm", "马德里竞技", "马竞", "colchoneros"}, League: "La Liga", Country: "Spain"},
		{Key: "sevilla", Name: "Sevilla FC", Short: "Sevilla", Aliases: []string{"sevilla", "sfc", "塞维利亚"}, League: "La Liga", Country: "Spain"},
		{Key: "real betis", Name: "Real Betis Balompié", Short: "Real Betis", Aliases: []string{"real betis", "betis", "rbfc", "皇家贝蒂斯"}, League: "La Liga", Country: "Spain"},
		{Key: "real sociedad", Name: "Real Sociedad de Fútbol", Short: "Real Sociedad", Aliases: []string{"real sociedad", "sociedad", "rsssb"}, League: "La Liga", Country: "Spain"},
		{Key: "villarreal", Name: "Villarreal CF", Short: "Villarreal", Aliases: []string{"villarreal", "yellow submarine", "维拉利尔"}, League: "La Liga", Country: "Spain"},
		{Key: "athletic bilbao", Name: "Athletic Club", Short: "Athletic Bilbao", Aliases: []string{"athletic bilbao", "athletic club", "athletic", "lions"}, League: "La Liga", Country: "Spain"},
		{Key: "valencia", Name: "Valencia CF", Short: "Valencia", Aliases: []string{"valencia", "vcf", "bats", "瓦伦西亚"}, League: "La Liga", Country: "Spain"},
		{Key: "celta vigo", Name: "RC Celta de Vigo", Short: "Celta Vigo", Aliases: []string{"celta vigo", "celta", "sky blues vigo"}, League: "La Liga", Country: "Spain"},
		{Key: "osasuna", Name: "Club Atlético Osasuna", Short: "Osasuna", Aliases: []string{"osasuna", "ca osasuna"}, League: "La Liga", Country: "Spain"},
		{Key: "girona", Name: "Girona FC", Short: "Girona", Aliases: []string{"girona", "gfc"}, League: "La Liga", Country: "Spain"},
		{Key: "getafe", Name: "Getafe CF", Short: "Getafe", Aliases: []string{"getafe", "gcf"}, League: "La Liga", Country: "Spain"},
		{Key: "rayo vallecano", Name: "Rayo Vallecano", Short: "Rayo", Aliases: []string{"rayo vallecano", "rayo"}, League: "La Liga", Country: "Spain"},
		{Key: "alaves", Name: "Deportivo Alavés", Short: "Alavés", Aliases: []string{"alaves", "alavés", "deportivo alaves"}, League: "La Liga", Country: "Spain"},
		{Key: "mallorca", Name: "RCD Mallorca", Short: "Mallorca", Aliases: []string{"mallorca", "rcd mallorca"}, League: "La Liga", Country: "Spain"},
		{Key: "espanyol", Name: "RCD Espanyol", Short: "Espanyol", Aliases: []string{"espanyol", "rcd espanyol", "西班牙人"}, League: "La Liga", Country: "Spain"},
		{Key: "las palmas", Name: "UD Las Palmas", Short: "Las Palmas", Aliases: []string{"las palmas", "ud las palmas"}, League: "La Liga", Country: "Spain"},

		// Serie A
		{Key: "juventus", Name: "Juventus FC", Short: "Juventus", Aliases: []string{"juventus", "juve", "old lady", "尤文图斯", "尤文", "bianconeri"}, League: "Serie A", Country: "Italy"},
		{Key: "inter milan", Name: "Inter Milan", Short: "Inter", Aliases: []string{"inter milan", "inter", "internazionale", "nerazzurri", "国际米兰", "国米"}, League: "Serie A", Country: "Italy"},
		{Key: "ac milan", Name: "AC Milan", Short: "AC Milan", Aliases: []string{"ac milan", "milan", "rossoneri", "AC米兰", "米兰"}, League: "Serie A", Country: "Italy"},
		{Key: "napoli", Name: "SSC Napoli", Short: "Napoli", Aliases: []string{"napoli", "ssc napoli", "partenopei", "那不勒斯"}, League: "Serie A", Country: "Italy"},
		{Key: "roma", Name: "AS Roma", Short: "Roma", Aliases: []string{"roma", "as roma", "giallorossi", "罗马"}, League: "Serie A", Country: "Italy"},
		{Key: "lazio", Name: "SS Lazio", Short: "Lazio", Aliases: []string{"lazio", "ss lazio", "biancocelesti", "拉齐奥"}, League: "Serie A", Country: "Italy"},
		{Key: "atalanta", Name: "Atalanta BC", Short: "Atalanta", Aliases: []string{"atalanta", "atalanta bc", "la dea", "阿特兰大"}, League: "Serie A", Country: "Italy"},
		{Key: "fiorentina", Name: "ACF Fiorentina", Short: "Fiorentina", Aliases: []string{"fiorentina", "viola", "la viola", "佛罗伦萨"}, League: "Serie A", Country: "Italy"},
		{Key: "torino", Name: "Torino FC", Short: "Torino", Aliases: []string{"torino", "toro", "granata"}, League: "Serie A", Country: "Italy"},
		{Key: "bologna", Name: "Bologna FC 1909", Short: "Bologna", Aliases: []string{"bologna", "bologna fc", "rossoblù"}, League: "Serie A", Country: "Italy"},
		{Key: "udinese", Name: "Udinese Calcio", Short: "Udinese", Aliases: []string{"udinese", "zebrette"}, League: "Serie A", Country: "Italy"},
		{Key: "monza", Name: "AC Monza", Short: "Monza", Aliases: []string{"monza", "ac monza"}, League: "Serie A", Country: "Italy"},
		{Key: "lecce", Name: "US Lecce", Short: "Lecce", Aliases: []string{"lecce", "us lecce"}, League: "Serie A", Country: "Italy"},
		{Key: "genoa", Name: "Genoa CFC", Short: "Genoa", Aliases: []string{"genoa", "cfc genoa", "grifone"}, League: "Serie A", Country: "Italy"},
		{Key: "cagliari", Name: "Cagliari Calcio", Short: "Cagliari", Aliases: []string{"cagliari", "rossoblù sardi"}, League: "Serie A", Country: "Italy"},
		{Key: "hellas verona", Name: "Hellas Verona FC", Short: "Verona", Aliases: []string{"verona", "hellas verona", "hellase"}, League: "Serie A", Country: "Italy"},
		{Key: "empoli", Name: "Empoli FC", Short: "Empoli", Aliases: []string{"empoli", "empoli fc"}, League: "Serie A", Country: "Italy"},

		// Bundesliga
		{Key: "bayern munich", Name: "FC Bayern München", Short: "Bayern Munich", Aliases: []string{"bayern munich", "bayern", "fcb", "bayer munich", "拜仁慕尼黑", "拜仁", "拜仁慕尼", "bavarians"}, League: "Bundesliga", Country: "Germany"},
		{Key: "borussia dortmund", Name: "Borussia Dortmund", Short: "Dortmund", Aliases: []string{"borussia dortmund", "dortmund", "bvb", "多特蒙德", "多特", "黄蜂", "black yellows"}, League: "Bundesliga", Country: "Germany"},
		{Key: "rb leipzig", Name: "RB Leipzig", Short: "RB Leipzig", Aliases: []string{"rb leipzig", "leipzig", "rbl", "莱比锡", "红牛莱比锡"}, League: "Bundesliga", Country: "Germany"},
		{Key: "bayer leverkusen", Name: "Bayer 04 Leverkusen", Short: "Leverkusen", Aliases: []string{"bayer leverkusen", "leverkusen", "b04", "勒沃库森"}, League: "Bundesliga", Country: "Germany"},
		{Key: "eintracht frankfurt", Name: "Eintracht Frankfurt", Short: "Frankfurt", Aliases: []string{"eintracht frankfurt", "frankfurt", "sge", "法兰克福"}, League: "Bundesliga", Country: "Germany"},
		{Key: "vfb stuttgart", Name: "VfB Stuttgart", Short: "Stuttgart", Aliases: []string{"vfb stuttgart", "stuttgart", "斯图加特"}, League: "Bundesliga", Country: "Germany"},
		{Key: "wolfsburg", Name: "VfL Wolfsburg", Short: "Wolfsburg", Aliases: []string{"wolfsburg", "vfl wolfsburg", "狼堡", "wolves wolfsburg"}, League: "Bundesliga", Country: "Germany"},
		{Key: "borussia monchengladbach", Name: "Borussia Mönchengladbach", Short: "Mönchengladbach", Aliases: []string{"borussia monchengladbach", "monchengladbach", "gladbach", "bmg", "门兴格拉德巴赫"}, League: "Bundesliga", Country: "Germany"},
		{Key: "union berlin", Name: "1. FC Union Berlin", Short: "Union Berlin", Aliases: []string{"union berlin", "fc union berlin", "union", "柏林联合"}, League: "Bundesliga", Country: "Germany"},
		{Key: "sc freiburg", Name: "SC Freiburg", Short: "Freiburg", Aliases: []string{"sc freiburg", "freiburg", "breisgauer"}, League: "Bundesliga", Country: "Germany"},
		{Key: "hoffenheim", Name: "TSG Hoffenheim", Short: "Hoffenheim", Aliases: []string{"hoffenheim", "tsg hoffenheim", "1899 hoffenheim"}, League: "Bundesliga", Country: "Germany"},
		{Key: "hertha bsc", Name: "Hertha BSC", Short: "Hertha", Aliases: []string{"hertha", "hertha bsc", "hertha berlin"}, League: "Bundesliga", Country: "Germany"},
		{Key: "hamburg", Name: "Hamburger SV", Short: "Hamburg", Aliases: []string{"hamburger sv", "hamburg", "hsv", "汉堡"}, League: "Bundesliga", Country: "Germany"},
		{Key: "schalke", Name: "FC Schalke 04", Short: "Schalke", Aliases: []string{"schalke", "schalke 04", "fc schalke", "沙尔克"}, League: "Bundesliga", Country: "Germany"},
		{Key: "werder bremen", Name: "SV Werder Bremen", Short: "Werder Bremen", Aliases: []string{"werder bremen", "werder", "sv werder", "不来梅"}, League: "Bundesliga", Country: "Germany"},
		{Key: "koln", Name: "1. FC Köln", Short: "Köln", Aliases: []string{"köln", "koln", "fc koln", "fc köln", "cologne"}, League: "Bundesliga", Country: "Germany"},
		{Key: "mainz", Name: "1. FSV Mainz 05", Short: "Mainz", Aliases: []string{"mainz", "mainz 05", "fsv mainz", "美因茨"}, League: "Bundesliga", Country: "Germany"},
		{Key: "augsburg", Name: "FC Augsburg", Short: "Augsburg", Aliases: []string{"augsburg", "fc augsburg"}, League: "Bundesliga", Country: "Germany"},

		// Ligue 1
		{Key: "paris saint-germain", Name: "Paris Saint-Germain FC", Short: "PSG", Aliases: []string{"paris saint-germain", "psg", "paris sg", "paris fc", "巴黎圣日耳曼", "巴黎", "parisiens"}, League: "Ligue 1", Country: "France"},
		{Key: "marseille", Name: "Olympique de Marseille", Short: "Marseille", Aliases: []string{"marseille", "om", "olympique marseille", "马赛", "phocéens"}, League: "Ligue 1", Country: "France"},
		{Key: "lyon", Name: "Olympique Lyonnais", Short: "Lyon", Aliases: []string{"lyon", "ol", "olympique lyonnais", "里昂", "gones"}, League: "Ligue 1", Country: "France"},
		{Key: "monaco", Name: "AS Monaco FC", Short: "Monaco", Aliases: []string{"monaco", "as monaco", "asmonaco", "摩纳哥", "monegasques"}, League: "Ligue 1", Country: "Monaco"},
		{Key: "lille", Name: "LOSC Lille", Short: "Lille", Aliases: []string{"lille", "losc", "losc lille", "里尔", "dogues"}, League: "Ligue 1", Country: "France"},
		{Key: "lens", Name: "RC Lens", Short: "Lens", Aliases: []string{"lens", "rc lens", "血腥佬"}, League: "Ligue 1", Country: "France"},
		{Key: "rennes", Name: "Stade Rennais FC", Short: "Rennes", Aliases: []string{"rennes", "stade rennais", "srfc", "雷恩"}, League: "Ligue 1", Country: "France"},
		{Key: "nice", Name: "OGC Nice", Short: "Nice", Aliases: []string{"nice", "ogc nice", "aiglons", "尼斯"}, League: "Ligue 1", Country: "France"},
		{Key: "nantes", Name: "FC Nantes", Short: "Nantes", Aliases: []string{"nantes", "fc nantes", "canaris", "南特"}, League: "Ligue 1", Country: "France"},
		{Key: "strasbourg", Name: "RC Strasbourg Alsace", Short: "Strasbourg", Aliases: []string{"strasbourg", "rc strasbourg", "racing strasbourg", "斯特拉斯堡"}, League: "Ligue 1", Country: "France"},
		{Key: "montpellier", Name: "Montpellier HSC", Short: "Montpellier", Aliases: []string{"montpellier", "mhsc", "la paillade"}, League: "Ligue 1", Country: "France"},
		{Key: "toulouse", Name: "Toulouse FC", Short: "Toulouse", Aliases: []string{"toulouse", "tfc", "téfécé"}, League: "Ligue 1", Country: "France"},
		{Key: "reims", Name: "Stade de Reims", Short: "Reims", Aliases: []string{"reims", "stade de reims", "sdr"}, League: "Ligue 1", Country: "France"},
		{Key: "brest", Name: "Stade Brestois 29", Short: "Brest", Aliases: []string{"brest", "stade brestois"}, League: "Ligue 1", Country: "France"},
		{Key: "le havre", Name: "Le Havre AC", Short: "Le Havre", Aliases: []string{"le havre", "hac", "havre ac"}, League: "Ligue 1", Country: "France"},
		{Key: "lorient", Name: "FC Lorient", Short: "Lorient", Aliases: []string{"lorient", "fc lorient", "les merlus"}, League: "Ligue 1", Country: "France"},
		{Key: "metz", Name: "FC Metz", Short: "Metz", Aliases: []string{"metz", "fc metz", "grenat"}, League: "Ligue 1", Country: "France"},
		{Key: "auxerre", Name: "AJ Auxerre", Short: "Auxerre", Aliases: []string{"auxerre", "aj auxerre", "aja"}, League: "Ligue 2", Country: "France"},
		{Key: "bordeaux", Name: "FC Girondins de Bordeaux", Short: "Bordeaux", Aliases: []string{"bordeaux", "girondins", "girondins de bordeaux", "fcgb"}, League: "Ligue 2", Country: "France"},

		// Other European clubs
		{Key: "ajax", Name: "AFC Ajax", Short: "Ajax", Aliases: []string{"ajax", "afc ajax", "阿贾克斯", "amsterdammers"}, League: "Eredivisie", Country: "Netherlands"},
		{Key: "psv eindhoven", Name: "PSV Eindhoven", Short: "PSV", Aliases: []string{"psv", "psv eindhoven", "eindhoven", "埃因霍温"}, League: "Eredivisie", Country: "Netherlands"},
		{Key: "feyenoord", Name: "Feyenoord Rotterdam", Short: "Feyenoord", Aliases: []string{"feyenoord", "feyenoord rotterdam", "de club"}, League: "Eredivisie", Country: "Netherlands"},
		{Key: "porto", Name: "FC Porto", Short: "Porto", Aliases: []string{"porto", "fc porto", "dragões", "波尔图"}, League: "Primeira Liga", Country: "Portugal"},
		{Key: "benfica", Name: "SL Benfica", Short: "Benfica", Aliases: []string{"benfica", "sl benfica", "águias", "本菲卡"}, League: "Primeira Liga", Country: "Portugal"},
		{Key: "sporting cp", Name: "Sporting CP", Short: "Sporting", Aliases: []string{"sporting cp", "sporting", "sporting portugal", "leões", "葡萄牙竞技"}, League: "Primeira Liga", Country: "Portugal"},
		{Key: "celtic", Name: "Celtic FC", Short: "Celtic", Aliases: []string{"celtic", "celtic fc", "bhoys", "凯尔特人"}, League: "Scottish Premiership", Country: "Scotland"},
		{Key: "rangers", Name: "Rangers FC", Short: "Rangers", Aliases: []string{"rangers", "rangers fc", "gers", "流浪者"}, League: "Scottish Premiership", Country: "Scotland"},
		{Key: "galatasaray", Name: "Galatasaray SK", Short: "Galatasaray", Aliases: []string{"galatasaray", "gala", "cimbom", "加拉塔萨雷"}, League: "Süper Lig", Country: "Turkey"},
		{Key: "fenerbahce", Name: "Fenerbahçe SK", Short: "Fenerbahçe", Aliases: []string{"fenerbahce", "fenerbahçe", "fener", "fb", "费内巴切"}, League: "Süper Lig", Country: "Turkey"},
		{Key: "besiktas", Name: "Beşiktaş JK", Short: "Beşiktaş", Aliases: []string{"besiktas", "beşiktaş", "bjk", "kartal"}, League: "Süper Lig", Country: "Turkey"},
		{Key: "anderlecht", Name: "RSC Anderlecht", Short: "Anderlecht", Aliases: []string{"anderlecht", "rsc anderlecht", "sporting anderlecht"}, League: "Pro League", Country: "Belgium"},
		{Key: "club brugge", Name: "Club Brugge KV", Short: "Club Brugge", Aliases: []string{"club brugge", "brugge", "blauw zwart"}, League: "Pro League", Country: "Belgium"},
		{Key: "red bull salzburg", Name: "FC Red Bull Salzburg", Short: "Salzburg", Aliases: []string{"salzburg", "red bull salzburg", "fc salzburg", "rbs"}, League: "Austrian Bundesliga", Country: "Austria"},
		{Key: "red star belgrade", Name: "FK Red Star Belgrade", Short: "Red Star", Aliases: []string{"red star belgrade", "red star", "crvena zvezda", "estrela vermelha"}, League: "Serbian SuperLiga", Country: "Serbia"},
		{Key: "dinamo zagreb", Name: "GNK Dinamo Zagreb", Short: "Dinamo Zagreb", Aliases: []string{"dinamo zagreb", "zagreb", "gnk dinamo"}, League: "HNL", Country: "Croatia"},
		{Key: "shakhtar donetsk", Name: "Shakhtar Donetsk", Short: "Shakhtar", Aliases: []string{"shakhtar", "shakhtar donetsk", "miners"}, League: "Ukrainian Premier League", Country: "Ukraine"},

		// National teams
		{Key: "france", Name: "France", Short: "France", Aliases: []string{"france", "french team", "les bleus", "équipe de france", "法国", "法兰西"}, League: "National Teams", Country: "France"},
		{Key: "germany", Name: "Germany", Short: "Germany", Aliases: []string{"germany", "deutschland", "allemagne", "deutsche mannschaft", "德国", "德意志"}, League: "National Teams", Country: "Germany"},
		{Key: "italy", Name: "Italy", Short: "Italy", Aliases: []string{"italy", "italia", "italie", "azzurri", "意大利"}, League: "National Teams", Country: "Italy"},
		{Key: "spain", Name: "Spain", Short: "Spain", Aliases: []string{"spain", "españa", "espagne", "espana", "la roja", "西班牙"}, League: "National Teams", Country: "Spain"},
		{Key: "england", Name: "England", Short: "England", Aliases: []string{"england", "angleterre", "three lions", "英格兰", "英国"}, League: "National Teams", Country: "England"},
		{Key: "portugal", Name: "Portugal", Short: "Portugal", Aliases: []string{"portugal", "selecção", "seleção", "quinas", "葡萄牙"}, League: "National Teams", Country: "Portugal"},
		{Key: "netherlands", Name: "Netherlands", Short: "Netherlands", Aliases: []string{"netherlands", "holland", "pays-bas", "oranje", "荷兰"}, League: "National Teams", Country: "Netherlands"},
		{Key: "belgium", Name: "Belgium", Short: "Belgium", Aliases: []string{"belgium", "belgique", "belgie", "red devils national", "比利时"}, League: "National Teams", Country: "Belgium"},
		{Key: "brazil", Name: "Brazil", Short: "Brazil", Aliases: []string{"brazil", "brasil", "brésil", "canarinha", "seleção brasileira", "巴西"}, League: "National Teams", Country: "Brazil"},
		{Key: "argentina", Name: "Argentina", Short: "Argentina", Aliases: []string{"argentina", "argentine", "albiceleste", "la albiceleste", "阿根廷"}, League: "National Teams", Country: "Argentina"},
		{Key: "croatia", Name: "Croatia", Short: "Croatia", Aliases: []string{"croatia", "croatie", "hrvatska", "vatreni", "克罗地亚"}, League: "National Teams", Country: "Croatia"},
		{Key: "morocco", Name: "Morocco", Short: "Morocco", Aliases: []string{"morocco", "maroc", "atlas lions", "المغرب", "摩洛哥"}, League: "National Teams", Country: "Morocco"},
		{Key: "senegal", Name: "Senegal", Short: "Senegal", Aliases: []string{"senegal", "sénégal", "lions of teranga", "塞内加尔"}, League: "National Teams", Country: "Senegal"},
		{Key: "nigeria", Name: "Nigeria", Short: "Nigeria", Aliases: []string{"nigeria", "super eagles", "尼日利亚"}, League: "National Teams", Country: "Nigeria"},
		{Key: "ivory coast", Name: "Ivory Coast", Short: "Ivory Coast", Aliases: []string{"ivory coast", "côte d'ivoire", "cote d'ivoire", "elephants", "科特迪瓦"}, League: "National Teams", Country: "Ivory Coast"},
		{Key: "cape verde", Name: "Cape Verde", Short: "Cape Verde", Aliases: []string{"cape verde", "cabo verde", "佛得角"}, League: "National Teams", Country: "Cape Verde"},
		{Key: "ghana", Name: "Ghana", Short: "Ghana", Aliases: []string{"ghana", "black stars", "加纳"}, League: "National Teams", Country: "Ghana"},
		{Key: "egypt", Name: "Egypt", Short: "Egypt", Aliases: []string{"egypt", "égypte", "egypte", "pharaohs", "مصر", "埃及"}, League: "National Teams", Country: "Egypt"},
		{Key: "cameroon", Name: "Cameroon", Short: "Cameroon", Aliases: []string{"cameroon", "cameroun", "indomitable lions", "喀麦隆"}, League: "National Teams", Country: "Cameroon"},
		{Key: "algeria", Name: "Algeria", Short: "Algeria", Aliases: []string{"algeria", "algérie", "algerie", "fennecs", "الجزائر", "阿尔及利亚"}, League: "National Teams", Country: "Algeria"},
		{Key: "tunisia", Name: "Tunisia", Short: "Tunisia", Aliases: []string{"tunisia", "tunisie", "eagles of carthage", "تونس", "突尼斯"}, League: "National Teams", Country: "Tunisia"},
		{Key: "colombia", Name: "Colombia", Short: "Colombia", Aliases: []string{"colombia", "colombie", "los cafeteros", "哥伦比亚"}, League: "National Teams", Country: "Colombia"},
		{Key: "uruguay", Name: "Uruguay", Short: "Uruguay", Aliases: []string{"uruguay", "celeste", "la celeste", "乌拉圭"}, League: "National Teams", Country: "Uruguay"},
		{Key: "mexico", Name: "Mexico", Short: "Mexico", Aliases: []string{"mexico", "mexique", "tri", "el tri", "墨西哥"}, League: "National Teams", Country: "Mexico"},
		{Key: "usa", Name: "United States", Short: "USA", Aliases: []string{"usa", "united states", "états-unis", "etats-unis", "usmnt", "美国"}, League: "National Teams", Country: "United States"},
		{Key: "japan", Name: "Japan", Short: "Japan", Aliases: []string{"japan", "japon", "samurai blue", "日本", "日本代表"}, League: "National Teams", Country: "Japan"},
		{Key: "south korea", Name: "South Korea", Short: "South Korea", Aliases: []string{"south korea", "korea", "corée du sud", "coree du sud", "taeguk warriors", "韩国", "朝鲜"}, League: "National Teams", Country: "South Korea"},
		{Key: "saudi arabia", Name: "Saudi Arabia", Short: "Saudi Arabia", Aliases: []string{"saudi arabia", "arabie saoudite", "green falcons", "السعودية", "沙特阿拉伯"}, League: "National Teams", Country: "Saudi Arabia"},
		{Key: "australia", Name: "Australia", Short: "Australia", Aliases: []string{"australia", "australie", "socceroos", "澳大利亚"}, League: "National Teams", Country: "Australia"},
		{Key: "switzerland", Name: "Switzerland", Short: "Switzerland", Aliases: []string{"switzerland", "suisse", "schweiz", "nati", "瑞士"}, League: "National Teams", Country: "Switzerland"},
		{Key: "poland", Name: "Poland", Short: "Poland", Aliases: []string{"poland", "pologne", "polska", "biało-czerwoni", "波兰"}, League: "National Teams", Country: "Poland"},
		{Key: "denmark", Name: "Denmark", Short: "Denmark", Aliases: []string{"denmark", "danemark", "danish dynamite", "丹麦"}, League: "National Teams", Country: "Denmark"},
		{Key: "norway", Name: "Norway", Short: "Norway", Aliases: []string{"norway", "norvège", "norvege", "norge", "挪威"}, League: "National Teams", Country: "Norway"},
		{Key: "sweden", Name: "Sweden", Short: "Sweden", Aliases: []string{"sweden", "suède", "suede", "sverige", "blågult", "瑞典"}, League: "National Teams", Country: "Sweden"},
		{Key: "turkey", Name: "Turkey", Short: "Turkey", Aliases: []string{"turkey", "turquie", "türkiye", "turkiye", "turks", "土耳其"}, League: "National Teams", Country: "Turkey"},
		{Key: "iran", Name: "Iran", Short: "Iran", Aliases: []string{"iran", "team melli", "ایران", "伊朗"}, League: "National Teams", Country: "Iran"},

		// Saudi Pro League / MLS
		{Key: "al hilal", Name: "Al Hilal SFC", Short: "Al Hilal", Aliases: []string{"al hilal", "hilal", "الهلال", "蓝月亮"}, League: "Saudi Pro League", Country: "Saudi Arabia"},
		{Key: "al nassr", Name: "Al Nassr FC", Short: "Al Nassr", Aliases: []string{"al nassr", "nassr", "النصر", "阿尔纳斯尔"}, League: "Saudi Pro League", Country: "Saudi Arabia"},
		{Key: "al ittihad", Name: "Al Ittihad Club", Short: "Al Ittihad", Aliases: []string{"al ittihad", "ittihad", "الاتحاد"}, League: "Saudi Pro League", Country: "Saudi Arabia"},
		{Key: "inter miami", Name: "Inter Miami CF", Short: "Inter Miami", Aliases: []string{"inter miami", "miami", "imcf", "herons"}, League: "MLS", Country: "United States"},
		{Key: "la galaxy", Name: "LA Galaxy", Short: "LA Galaxy", Aliases: []string{"la galaxy", "galaxy", "los angeles galaxy"}, League: "MLS", Country: "United States"},

		// South American clubs
		{Key: "boca juniors", Name: "Club Atlético Boca Juniors", Short: "Boca Juniors", Aliases: []string{"boca juniors", "boca", "xeneize", "博卡青年"}, League: "Liga Profesional", Country: "Argentina"},
		{Key: "river plate", Name: "Club Atlético River Plate", Short: "River Plate", Aliases: []string{"river plate", "river", "millonarios", "河床"}, League: "Liga Profesional", Country: "Argentina"},
		{Key: "flamengo", Name: "Clube de Regatas do Flamengo", Short: "Flamengo", Aliases: []string{"flamengo", "fla", "mengão", "flamengo rj", "弗拉门戈"}, League: "Brasileirão", Country: "Brazil"},
		{Key: "palmeiras", Name: "Sociedade Esportiva Palmeiras", Short: "Palmeiras", Aliases: []string{"palmeiras", "porco", "verdão"}, League: "Brasileirão", Country: "Brazil"},
		{Key: "corinthians", Name: "Sport Club Corinthians Paulista", Short: "Corinthians", Aliases: []string{"corinthians", "timão", "corinthians paulista"}, League: "Brasileirão", Country: "Brazil"},
		{Key: "santos", Name: "Santos FC", Short: "Santos", Aliases: []string{"santos", "santos fc", "peixe"}, League: "Brasileirão", Country: "Brazil"},
		{Key: "sao paulo", Name: "São Paulo FC", Short: "São Paulo", Aliases: []string{"sao paulo", "são paulo", "spfc", "tricolor paulista"}, League: "Brasileirão", Country: "Brazil"},
		{Key: "fluminense", Name: "Fluminense FC", Short: "Fluminense", Aliases: []string{"fluminense", "flu", "tricolor carioca"}, League: "Brasileirão", Country: "Brazil"},
		{Key: "atletico mineiro", Name: "Clube Atlético Mineiro", Short: "Atlético Mineiro", Aliases: []string{"atletico mineiro", "atlético mineiro", "galo", "galo atletico"}, League: "Brasileirão", Country: "Brazil"},
		{Key: "botafogo", Name: "Botafogo de Futebol e Regatas", Short: "Botafogo", Aliases: []string{"botafogo", "bfr", "glorioso"}, League: "Brasileirão", Country: "Brazil"},
		{Key: "vasco da gama", Name: "Club de Regatas Vasco da Gama", Short: "Vasco", Aliases: []string{"vasco da gama", "vasco", "crvg"}, League: "Brasileirão", Country: "Brazil"},
		{Key: "gremio", Name: "Grêmio FBPA", Short: "Grêmio", Aliases: []string{"gremio", "grêmio", "tricolor gaucho"}, League: "Brasileirão", Country: "Brazil"},
		{Key: "colo-colo", Name: "Club Social y Deportivo Colo-Colo", Short: "Colo-Colo", Aliases: []string{"colo-colo", "colo colo", "cacique"}, League: "Primera División Chile", Country: "Chile"},
		{Key: "nacional", Name: "Club Nacional de Football", Short: "Nacional", Aliases: []string{"nacional", "club nacional", "bolso"}, League: "Primera División Uruguay", Country: "Uruguay"},
		{Key: "penarol", Name: "Club Atlético Peñarol", Short: "Peñarol", Aliases: []string{"peñarol", "penarol", "peñarol montevideo", "carboneros"}, League: "Primera División Uruguay", Country: "Uruguay"},
	}
}
