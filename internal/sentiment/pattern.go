package sentiment

// patternEntry carries the polarity and subjectivity of one lexicon word.
type patternEntry struct {
	polarity     float64
	subjectivity float64
}

// patternBoosters scale the polarity of the word that follows them.
var patternBoosters = map[string]float64{
	"very":       1.3,
	"really":     1.3,
	"extremely":  1.5,
	"incredibly": 1.5,
	"absolutely": 1.4,
	"truly":      1.3,
	"totally":    1.3,
	"quite":      1.1,
	"so":         1.2,
	"slightly":   0.7,
	"somewhat":   0.8,
	"barely":     0.6,
	"hardly":     0.6,
	"rather":     0.9,
}

// scorePattern averages lexicon polarity/subjectivity over matched words,
// applying booster scaling and negation flips from the preceding tokens.
// No matches means no signal: both values stay at zero.
func scorePattern(tokens []string) (polarity, subjectivity float64) {
	var sumP, sumS float64
	matched := 0

	for i, tok := range tokens {
		entry, ok := patternLexicon[tok]
		if !ok {
			continue
		}

		p := entry.polarity
		s := entry.subjectivity

		if i > 0 {
			if factor, ok := patternBoosters[tokens[i-1]]; ok {
				p *= factor
				s = clamp(s*factor, 0, 1)
			}
		}
		for dist := 1; dist <= 2 && i-dist >= 0; dist++ {
			if negators[tokens[i-dist]] {
				p *= -0.5
				break
			}
		}

		sumP += clamp(p, -1, 1)
		sumS += s
		matched++
	}

	if matched == 0 {
		return 0, 0
	}

	return sumP / float64(matched), clamp(sumS/float64(matched), 0, 1)
}

var patternLexicon = map[string]patternEntry{
	"love":         {0.50, 0.60},
	"loved":        {0.70, 0.80},
	"loves":        {0.50, 0.60},
	"amazing":      {0.60, 0.90},
	"awesome":      {1.00, 1.00},
	"excellent":    {1.00, 1.00},
	"great":        {0.80, 0.75},
	"good":         {0.70, 0.60},
	"best":         {1.00, 0.30},
	"better":       {0.50, 0.50},
	"impressive":   {1.00, 1.00},
	"impressed":    {1.00, 1.00},
	"exciting":     {0.30, 0.80},
	"excited":      {0.30, 0.70},
	"promising":    {0.50, 0.70},
	"fascinating":  {0.70, 0.90},
	"beneficial":   {0.50, 0.40},
	"benefit":      {0.30, 0.30},
	"improved":     {0.40, 0.40},
	"improve":      {0.40, 0.40},
	"improvement":  {0.40, 0.40},
	"helpful":      {0.30, 0.30},
	"helped":       {0.30, 0.30},
	"wonderful":    {1.00, 1.00},
	"fantastic":    {0.40, 0.90},
	"brilliant":    {0.90, 0.90},
	"happy":        {0.80, 1.00},
	"glad":         {0.50, 1.00},
	"nice":         {0.60, 1.00},
	"perfect":      {1.00, 1.00},
	"easy":         {0.43, 0.83},
	"strong":       {0.40, 0.40},
	"successful":   {0.75, 0.95},
	"success":      {0.50, 0.40},
	"valuable":     {0.40, 0.30},
	"innovative":   {0.50, 0.50},
	"optimistic":   {0.50, 0.70},
	"positive":     {0.25, 0.40},
	"hopeful":      {0.50, 0.60},
	"enormous":     {0.40, 0.90},
	"empowering":   {0.50, 0.60},
	"crucial":      {0.40, 0.60},
	"safe":         {0.50, 0.50},
	"transparent":  {0.20, 0.30},
	"breakthrough": {0.50, 0.50},
	"enjoy":        {0.40, 0.50},
	"trust":        {0.30, 0.40},
	"progress":     {0.35, 0.35},
	"sophisticated": {0.30, 0.60},
	"win":          {0.60, 0.50},
	"winning":      {0.60, 0.50},

	"hate":          {-0.80, 0.90},
	"terrible":      {-1.00, 1.00},
	"horrible":      {-1.00, 1.00},
	"awful":         {-1.00, 1.00},
	"bad":           {-0.70, 0.67},
	"worse":         {-0.50, 0.50},
	"worst":         {-1.00, 1.00},
	"concern":       {-0.30, 0.50},
	"concerns":      {-0.30, 0.50},
	"concerning":    {-0.40, 0.60},
	"concerned":     {-0.30, 0.60},
	"worried":       {-0.50, 0.60},
	"worrying":      {-0.50, 0.60},
	"worry":         {-0.40, 0.50},
	"afraid":        {-0.60, 0.90},
	"scary":         {-0.60, 0.90},
	"fear":          {-0.60, 0.80},
	"fears":         {-0.60, 0.80},
	"danger":        {-0.50, 0.50},
	"dangerous":     {-0.60, 0.70},
	"risk":          {-0.30, 0.40},
	"risks":         {-0.30, 0.40},
	"risky":         {-0.40, 0.60},
	"problem":       {-0.30, 0.30},
	"problems":      {-0.30, 0.30},
	"fail":          {-0.50, 0.50},
	"failed":        {-0.50, 0.50},
	"failure":       {-0.60, 0.60},
	"crisis":        {-0.60, 0.50},
	"threat":        {-0.50, 0.50},
	"biased":        {-0.50, 0.70},
	"bias":          {-0.40, 0.50},
	"unfair":        {-0.60, 0.80},
	"wrong":         {-0.50, 0.50},
	"harmful":       {-0.60, 0.60},
	"harm":          {-0.50, 0.50},
	"damaging":      {-0.50, 0.50},
	"damage":        {-0.40, 0.40},
	"difficult":     {-0.50, 0.70},
	"sad":           {-0.50, 1.00},
	"angry":         {-0.60, 0.90},
	"disappointing": {-0.60, 0.80},
	"disappointed":  {-0.60, 0.80},
	"poor":          {-0.40, 0.60},
	"useless":       {-0.50, 0.40},
	"broken":        {-0.40, 0.40},
	"serious":       {-0.20, 0.60},
	"severe":        {-0.60, 0.70},
	"misleading":    {-0.40, 0.50},
	"unethical":     {-0.60, 0.70},
	"loss":          {-0.40, 0.40},
	"lose":          {-0.40, 0.40},
	"destroy":       {-0.70, 0.70},
	"destroys":      {-0.70, 0.70},
}
