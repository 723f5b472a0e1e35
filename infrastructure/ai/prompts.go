package ai

import (
	"fmt"
	"strings"

	"accessengine-backend/application/ports"
	"accessengine-backend/domain/core/valueobjects"
	"accessengine-backend/domain/services"
)

// leveragePrompt asks for the four-part leverage package. The format
// contract at the end is what parseKeyValues relies on.
func leveragePrompt(req ports.LeverageRequest) string {
	news := make([]string, 0, 3)
	for _, title := range req.RecentNews {
		if len(news) == 3 {
			break
		}
		news = append(news, "- "+title)
	}
	newsSummary := strings.Join(news, "\n")
	if newsSummary == "" {
		newsSummary = "No recent news available"
	}

	ask := req.Ask
	if ask == "" {
		ask = "a short introductory call"
	}

	return fmt.Sprintf(`You are a world-class relationship strategist helping someone get a conversation with %[1]s.

ABOUT %[2]s:
%[3]s

RECENT NEWS ABOUT THEM:
%[4]s

THE PERSON REQUESTING ACCESS:
%[5]s

WHAT THEY WANT:
%[6]s

Generate a compelling leverage package with these 4 components:

1. VALUE_PROP: A 2-sentence explanation of why meeting this person genuinely benefits %[1]s.
   Must be specific to their current situation and goals. NOT generic flattery.

2. EGO_HOOK: A 1-sentence observation about %[1]s that shows deep understanding of their work.
   Something that makes them feel truly seen, not just famous.

3. CURIOSITY_HOOK: A 1-sentence teaser that makes them curious enough to respond.
   Should feel like an incomplete story they need to hear the end of.

4. SUBJECT_LINE: A 6-word email or DM subject line that gets opened. Not clickbait. Genuinely intriguing.

Format your response EXACTLY like this:
VALUE_PROP: [your text]
EGO_HOOK: [your text]
CURIOSITY_HOOK: [your text]
SUBJECT_LINE: [your text]`,
		req.CelebrityName,
		strings.ToUpper(req.CelebrityName),
		req.CelebrityBio,
		newsSummary,
		req.Background,
		ask,
	)
}

// messagePrompt asks for one hop's outreach message plus routing notes
func messagePrompt(req ports.MessageRequest) string {
	return fmt.Sprintf(`You are writing a %[1]s outreach message.

SENDER: %[2]s
SENDER BACKGROUND: %[3]s

TARGET: %[4]s (%[5]s)
TARGET'S CONNECTION TO %[6]s: %[7]s
WHY THEY WOULD FORWARD: %[8]s

ULTIMATE GOAL: Get a conversation with %[9]s
VALUE PROPOSITION: %[10]s

CRITICAL: This message is to %[4]s, who has a connection to %[9]s.
You are asking %[4]s to forward or intro the sender to %[9]s.

Write a message that sounds like a real text or DM from a smart person:
- Start with "Hi," and then introduce the sender in one natural sentence drawn from the background above
- First line acknowledges the target's connection to %[9]s naturally
- No hyphens or dashes of any kind anywhere in the message
- Write like a friendly founder texting another founder. Warm, grateful, human
- No aggressive language like "knock on", "pitch", "close", "deal"
- One sentence on what the sender built or does
- One sentence on why it is relevant to %[9]s's world
- Phrase the ask softly: "Would you be open to passing this along?" or "If it feels right, would you intro me?"
- Under 70 words. Short reads confident. Long reads desperate
- Never use "I wanted to reach out", "Hope this finds you well", "I know you're busy"
- Never use "I'd love to" or "Would love to"
- Read it back. If it sounds machine-written, rewrite it

Also provide:
- SUBJECT_LINE: if this is an email (6 words max)
- PLATFORM_NOTE: best platform to send this (email / Twitter DM / LinkedIn / text)
- TONE_NOTE: one-word tone description

Format EXACTLY:
MESSAGE: [your message]
SUBJECT_LINE: [subject]
PLATFORM_NOTE: [platform]
TONE_NOTE: [tone]`,
		hopDirective(req.Hop),
		req.SenderName,
		req.SenderBackground,
		req.TargetName,
		req.TargetRole,
		strings.ToUpper(req.CelebrityName),
		req.Relationship,
		req.ForwardReason,
		req.CelebrityName,
		req.ValueProp,
	)
}

// strategyPrompt asks for the three-paragraph access brief
func strategyPrompt(req ports.StrategyRequest) string {
	entries := make([]string, 0, 4)
	for _, point := range req.EntryPoints {
		if len(entries) == 4 {
			break
		}
		entries = append(entries, fmt.Sprintf("- %s (%s), warm score %d", point.Name, point.Role, point.WarmScore))
	}
	entrySummary := strings.Join(entries, "\n")
	if entrySummary == "" {
		entrySummary = "No scored entry points yet"
	}

	return fmt.Sprintf(`You are a strategic advisor helping someone access %s.

CELEBRITY PROFILE:
%s

ACCESS SCORE: %d/100
(%s)

BEST ENTRY POINTS FOUND:
%s

USER BACKGROUND:
%s

Write a 3-paragraph strategic brief (plain text, no headers, no bullet points):
1. Why this celebrity is or isn't reachable and what their main access pattern is
2. The single best entry point and exactly why it works for this user specifically
3. One unconventional tactic that most people wouldn't think of for THIS specific celebrity

Keep it sharp, specific, and under 200 words total. Write like a well-connected advisor who actually knows this world.`,
		req.CelebrityName,
		truncate(req.CelebrityBio, 300),
		req.AccessScore,
		reachability(req.AccessScore),
		entrySummary,
		req.Background,
	)
}

// hopDirective names the hop so the model writes for the right sender
func hopDirective(hop valueobjects.HopLabel) string {
	switch hop {
	case valueobjects.HopSecond:
		return "SECOND hop (forwarded intro)"
	case valueobjects.HopThird:
		return "THIRD hop (someone close to the celebrity)"
	default:
		return "FIRST hop (you sending directly)"
	}
}

// reachability phrases the access band for the strategy prompt
func reachability(score int) string {
	switch services.AccessBand(score) {
	case services.BandGuarded:
		return "Hard to reach directly, warm paths are the way in"
	case services.BandModerate:
		return "Moderately reachable, direct and warm paths are both viable"
	default:
		return "Highly reachable, multiple strong entry points"
	}
}

// truncate caps a string at n runes
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
