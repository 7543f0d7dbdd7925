package store

import (
	"github.com/msadmin/core/internal/models"
)

// Init writes first-run defaults for every collection that is absent.
// Safe to call on every startup; present keys are never touched.
func (s *Store) Init() error {
	defaults := []struct {
		key   string
		value any
	}{
		{KeyArticles, seedArticles()},
		{KeyCaseStudies, seedCaseStudies()},
		{KeyAnalytics, map[string]int{}},
		{KeyLogs, []models.ActivityEntry{}},
		{KeyTrash, []models.TrashItem{}},
	}
	for _, d := range defaults {
		if s.Has(d.key) {
			continue
		}
		if err := s.Save(d.key, d.value); err != nil {
			return err
		}
	}
	return nil
}

func seedArticles() []models.ContentItem {
	return []models.ContentItem{
		{
			ContentBase: models.ContentBase{
				ID:      "1",
				Title:   "Exchange Online Mailbox Migration Best Practices",
				Slug:    "exchange-online-migration-best-practices",
				Summary: "A comprehensive guide to planning, executing, and validating hybrid mailbox migrations with zero downtime.",
				Content: "# Exchange Online Migration Best Practices\n\n" +
					"Migrating to Exchange Online is a critical task for any modern enterprise. This guide covers the essential steps for a successful Hybrid migration.\n\n" +
					"## 1. Pre-Migration Assessment\n*   Analyze network bandwidth.\n*   Clean up Active Directory attributes.\n*   Identify large mailboxes (>100GB).\n\n" +
					"## 2. Hybrid Configuration\nUsing the HCW (Hybrid Configuration Wizard) is standard, but ensuring your certificates and connector validation is key.\n\n" +
					"## 3. The Move Request\nPowershell is your friend here.\n\n" +
					"```powershell\nNew-MoveRequest -Identity \"user@domain.com\" -RemoteHostName \"mail.onprem.com\" -RemoteCredential $cred -TargetDeliveryDomain \"tenant.mail.onmicrosoft.com\"\n```\n\n" +
					"## 4. Post-Migration\nAlways verify free/busy status and calendar sharing permissions immediately after the move completes.",
				Tags:     []string{"Exchange Online", "Migration", "PowerShell", "Hybrid"},
				Status:   models.StatusPublished,
				Date:     "2023-10-15",
				ImageURL: "https://picsum.photos/seed/exchange/800/400",
			},
		},
		{
			ContentBase: models.ContentBase{
				ID:       "2",
				Title:    "Intune Device Compliance Policies: A Deep Dive",
				Slug:     "intune-device-compliance-policies",
				Summary:  "Ensuring device security before granting access. How to configure and troubleshoot compliance policies in Endpoint Manager.",
				Content:  "# Intune Compliance\n\nCompliance policies are the gatekeepers of your zero-trust architecture...",
				Tags:     []string{"Intune", "Security", "MDM", "Compliance"},
				Status:   models.StatusPublished,
				Date:     "2023-11-02",
				ImageURL: "https://picsum.photos/seed/intune/800/400",
			},
		},
		{
			ContentBase: models.ContentBase{
				ID:       "3",
				Title:    "Conditional Access Implementation Guide",
				Slug:     "conditional-access-implementation-guide",
				Summary:  "Moving beyond MFA: Context-aware access controls. Best practices for configuring Entra ID CA policies.",
				Content:  "# Conditional Access\n\nIdentity is the new perimeter. Here is how we lock it down...",
				Tags:     []string{"Entra ID", "Security", "Identity", "MFA"},
				Status:   models.StatusPublished,
				Date:     "2023-12-10",
				ImageURL: "https://picsum.photos/seed/entra/800/400",
			},
		},
	}
}

func seedCaseStudies() []models.ContentItem {
	return []models.ContentItem{
		{
			ContentBase: models.ContentBase{
				ID:      "cs1",
				Title:   "Managed 5,000+ mailboxes with advanced security",
				Slug:    "atlas-air-mailbox-security",
				Summary: "Secured a large-scale hybrid environment against phishing and unauthorized access.",
				Content: "## Problem\nThe client faced increasing phishing attacks and needed to standardize email security across a complex hybrid environment.\n\n" +
					"## Actions taken\n*   Deployed Defender for Office 365 (Safe Links, Safe Attachments).\n*   Implemented strict SPF, DKIM, and DMARC policies.\n*   Automated mailbox cleanup scripts via PowerShell.\n\n" +
					"## Outcome\nAchieved a **99.9%** reduction in delivered phishing emails and standardized the offboarding process.",
				Tags:     []string{"Security", "Exchange", "Defender"},
				Status:   models.StatusPublished,
				Date:     "2023-08-20",
				ImageURL: "https://picsum.photos/seed/atlas/800/400",
			},
			Client:      "Atlas Air",
			Environment: "5,000+ Mailboxes, Hybrid Exchange",
			Outcome:     "Reduced security incidents by 40% and improved uptime.",
		},
		{
			ContentBase: models.ContentBase{
				ID:       "cs2",
				Title:    "Deployed Intune MDM for 1,000+ devices",
				Slug:     "jde-intune-deployment",
				Summary:  "Transitioned from legacy GPO management to modern cloud-native MDM with Intune.",
				Content:  "# JDE Intune Rollout\n\nFull transition to modern management...",
				Tags:     []string{"Intune", "Autopilot", "Windows 11"},
				Status:   models.StatusPublished,
				Date:     "2023-05-15",
				ImageURL: "https://picsum.photos/seed/jde/800/400",
			},
			Client:      "JDE",
			Environment: "1,000+ iOS & Windows Devices",
			Outcome:     "Zero-touch provisioning achieved via Autopilot.",
		},
		{
			ContentBase: models.ContentBase{
				ID:       "cs3",
				Title:    "Seamless tenant-to-tenant migration",
				Slug:     "jde-peets-migration",
				Summary:  "Executed a complex identity and data migration following a corporate merger.",
				Content:  "# Tenant Migration\n\nCross-tenant synchronization and identity mapping were key...",
				Tags:     []string{"Migration", "Entra ID", "SharePoint"},
				Status:   models.StatusPublished,
				Date:     "2023-09-01",
				ImageURL: "https://picsum.photos/seed/peets/800/400",
			},
			Client:      "JDE Peet's",
			Environment: "Merger & Acquisition Scenario",
			Outcome:     "Day-1 access enabled for all migrated users with no data loss.",
		},
	}
}
