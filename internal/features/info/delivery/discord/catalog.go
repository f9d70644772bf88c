package discord

import (
	"github.com/bwmarrin/discordgo"
)

// SelectID tags the category dropdown on the public info message.
const SelectID = "crc_info_select"

const embedColor = 16711422

const infoBannerURL = "https://media.discordapp.net/attachments/1197237670095622264/1420109288050790504/INFORMATION.png?ex=68d4dc16&is=68d38a96&hm=119947f3c99253d01ba484dca05d7249432edfb2c1f7073308919ea7bb869e5a&=&format=webp&quality=lossless&width=324&height=162"

// catalogMessage builds the public overview: banner, category summary and
// the category dropdown.
func catalogMessage() *discordgo.MessageSend {
	emoji := func(name string) *discordgo.ComponentEmoji {
		return &discordgo.ComponentEmoji{Name: name}
	}

	return &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{
			{
				Color: embedColor,
				Image: &discordgo.MessageEmbedImage{URL: infoBannerURL},
			},
			{
				Color:       embedColor,
				Description: "Select a category from the dropdown to learn more about each category.",
				Fields: []*discordgo.MessageEmbedField{
					{Name: "Donation information", Value: "Information about the perks and costs of donation to Code Red Creations"},
					{Name: "Applying for a Staff or Developer position.", Value: "Information about the requirements for applying and more."},
					{Name: "Products Information", Value: "Information about the products we sell at Code Red Creations."},
					{Name: "Affiliation Information", Value: "Information about perks and requirements to affiliate with Code Red Creations."},
				},
			},
		},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.SelectMenu{
						CustomID:    SelectID,
						Placeholder: "Choose a category…",
						Options: []discordgo.SelectMenuOption{
							{Label: "Donation information", Value: "donation_info", Emoji: emoji("💵")},
							{Label: "Applying for Staff/Developer", Value: "applying_info", Emoji: emoji("🛡️")},
							{Label: "Products information", Value: "products_info", Emoji: emoji("🛒")},
							{Label: "Affiliation information", Value: "affiliation_info", Emoji: emoji("🤝")},
						},
					},
				},
			},
		},
	}
}

// categoryEmbed returns the detail embed for a dropdown value. Unknown
// values get a placeholder so the select always answers.
func categoryEmbed(key string) *discordgo.MessageEmbed {
	switch key {
	case "donation_info":
		return &discordgo.MessageEmbed{
			Color: embedColor,
			Title: "Donation information",
			Description: "If you would like to support our community and get some perks for yourself, you can do it over here:\n" +
				"[Code Red Creations - Roblox Group](https://www.roblox.com/share/g/70326561)\n" +
				"*Create a ticket to aquire your role.*",
			Fields: []*discordgo.MessageEmbedField{
				{Name: "💎 - Platinum Member", Value: "- Shout out\n- Role + Colour\n- Exclusive Sneak Peeks\n- Platinum Chat\n- Platinum Call\n*Price: 200R$/month*", Inline: true},
				{Name: "💎 - Platinum Member (Lifetime)", Value: "- Shout out\n- Role + Colour\n- Exclusive Sneak Peeks\n- Platinum Chat\n- Platinum Call\n*Price: 2200R$*", Inline: true},
				{Name: "⚜️ - Ultimate Member", Value: "- Shout out\n- Role + Colour\n- Exclusive Sneak Peeks\n- Platinum **and** Ultimate Chat\n- Platinum **and** Ultimate Call\n- Ultimate Giveaways\n*Price: 400R$/month*", Inline: true},
				{Name: "🌟 - Server Booster", Value: "- Shout out\n- Role + Colour\n- Exclusive Sneak Peeks\n- Platinum Chat\n- Platinum Call", Inline: true},
			},
		}
	case "applying_info":
		return &discordgo.MessageEmbed{
			Color:       embedColor,
			Title:       "Applying for a Staff or Developer position",
			Description: "At Code Red Creations, we’re looking for active UGC developers and, from time to time, new staff members to strengthen our team.",
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Applying for the Staff Team", Value: "Help enforce rules and support members.\n\nKeep an eye on announcements for openings!"},
				{Name: "Applying for UGC Developer", Value: "We’re always looking for active and experienced UGC creators.\n\nOpen a ticket and share your portfolio!"},
			},
		}
	case "products_info":
		return &discordgo.MessageEmbed{
			Color:       embedColor,
			Title:       "Products information",
			Description: "We create high-quality Roblox UGCs.\n\nFind all our products in <#1417530200283152465>. Open a ticket for questions.",
		}
	case "affiliation_info":
		return &discordgo.MessageEmbed{
			Color:       embedColor,
			Title:       "Affiliation information",
			Description: "Our Affiliation Program lets communities collaborate with Code Red Creations.\n\nOpen a ticket if interested.",
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Perks", Value: "- UGCs inspired by your community\n- Priority suggestions\n- Exclusive sneak peeks\n- Updates in your Sneak Peeks channel\n- Promotion in our server", Inline: true},
				{Name: "Requirements", Value: "- Active, community-focused server\n- Promote CRC visibly\n- Allow progress updates in Sneak Peeks\n- Friendly environment\n- Open to collaboration", Inline: true},
			},
		}
	default:
		return &discordgo.MessageEmbed{
			Color:       embedColor,
			Title:       "Unknown",
			Description: "This option is not configured.",
		}
	}
}
